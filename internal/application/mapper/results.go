package mapper

import (
	"taskboard/internal/application/common"
	"taskboard/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	return &common.TaskResult{
		Id:          task.Id,
		UserId:      task.UserId,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}
