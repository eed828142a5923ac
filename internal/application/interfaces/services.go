package interfaces

import (
	"context"

	"taskboard/internal/application/command"
	"taskboard/internal/application/query"
)

type AuthService interface {
	Register(registerCommand *command.RegisterCommand) (*command.RegisterCommandResult, error)
	Login(loginCommand *command.LoginCommand) (*command.LoginCommandResult, error)
	GetProfile(ctx context.Context, userId int64) (*query.UserQueryResult, error)
}

type TaskService interface {
	CreateTask(createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	ListTasks(userId int64) (*query.TaskQueryListResult, error)
	UpdateTask(updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	DeleteTask(userId, taskId int64) error
	BulkDelete(bulkCommand *command.BulkDeleteCommand) (*command.BulkDeleteCommandResult, error)
}
