package command

import (
	"taskboard/internal/application/common"
	"taskboard/internal/domain/entities"
)

type CreateTaskCommand struct {
	UserId      int64
	Title       string
	Description *string
	Priority    *string
	DueDate     *string
}

type CreateTaskCommandResult struct {
	Task *common.TaskResult `json:"task"`
}

type UpdateTaskCommand struct {
	UserId int64
	TaskId int64
	Patch  entities.TaskPatch
}

type UpdateTaskCommandResult struct {
	Task *common.TaskResult `json:"task"`
}

type BulkDeleteCommand struct {
	UserId int64
	Ids    []int64
}

// BulkDeleteItem reports the outcome for a single requested id. Items come
// back in request order so callers can see exactly which deletions took.
type BulkDeleteItem struct {
	Id      int64  `json:"id"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

type BulkDeleteCommandResult struct {
	Items []BulkDeleteItem `json:"results"`
}
