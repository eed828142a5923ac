package http

import (
	"taskboard/internal/application/command"
	"taskboard/internal/application/common"
)

// Request and response shapes, one pair per endpoint. Optional fields are
// pointers so an absent field is distinguishable from a zero value.

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type profileResponse struct {
	Message string             `json:"message"`
	User    *common.UserResult `json:"user"`
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	Completed   *bool   `json:"completed"`
}

type taskResponse struct {
	Message string             `json:"message"`
	Task    *common.TaskResult `json:"task"`
}

type deleteTaskResponse struct {
	Message string `json:"message"`
	Id      int64  `json:"id"`
}

type bulkDeleteRequest struct {
	Ids []int64 `json:"ids"`
}

type bulkDeleteResponse struct {
	Message string                   `json:"message"`
	Results []command.BulkDeleteItem `json:"results"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
