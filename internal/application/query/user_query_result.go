package query

import "taskboard/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

type TaskQueryListResult struct {
	Result []*common.TaskResult `json:"result"`
}
