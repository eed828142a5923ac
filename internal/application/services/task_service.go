package services

import (
	"errors"
	"strings"

	"taskboard/internal/application/command"
	"taskboard/internal/application/common"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/application/mapper"
	"taskboard/internal/application/query"
	"taskboard/internal/domain"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type TaskService struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) interfaces.TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	if strings.TrimSpace(createCommand.Title) == "" {
		return nil, domain.NewValidationError("Task title required")
	}

	newTask := entities.NewTask(
		createCommand.UserId,
		createCommand.Title,
		createCommand.Description,
		createCommand.Priority,
		createCommand.DueDate,
	)
	validatedTask, err := entities.NewValidatedTask(newTask)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	createdTask, err := s.taskRepo.Create(validatedTask)
	if err != nil {
		return nil, err
	}

	return &command.CreateTaskCommandResult{
		Task: mapper.NewTaskResultFromEntity(createdTask),
	}, nil
}

func (s *TaskService) ListTasks(userId int64) (*query.TaskQueryListResult, error) {
	tasks, err := s.taskRepo.ListByUser(userId)
	if err != nil {
		return nil, err
	}

	results := make([]*common.TaskResult, 0, len(tasks))
	for i := range tasks {
		results = append(results, mapper.NewTaskResultFromEntity(&tasks[i]))
	}

	return &query.TaskQueryListResult{Result: results}, nil
}

func (s *TaskService) UpdateTask(updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	if updateCommand.Patch.IsEmpty() {
		return nil, domain.NewValidationError("Nothing to update")
	}

	updatedTask, err := s.taskRepo.Update(updateCommand.UserId, updateCommand.TaskId, updateCommand.Patch)
	if err != nil {
		return nil, err
	}

	return &command.UpdateTaskCommandResult{
		Task: mapper.NewTaskResultFromEntity(updatedTask),
	}, nil
}

func (s *TaskService) DeleteTask(userId, taskId int64) error {
	return s.taskRepo.Delete(userId, taskId)
}

// BulkDelete attempts every id independently and reports per-item results
// in request order. A failing id never aborts the rest of the batch.
func (s *TaskService) BulkDelete(bulkCommand *command.BulkDeleteCommand) (*command.BulkDeleteCommandResult, error) {
	if len(bulkCommand.Ids) == 0 {
		return nil, domain.NewValidationError("No task ids supplied")
	}

	items := make([]command.BulkDeleteItem, 0, len(bulkCommand.Ids))
	for _, id := range bulkCommand.Ids {
		item := command.BulkDeleteItem{Id: id, Deleted: true}
		if err := s.taskRepo.Delete(bulkCommand.UserId, id); err != nil {
			item.Deleted = false
			var notFound *domain.NotFoundError
			if errors.As(err, &notFound) {
				item.Error = notFound.Message
			} else {
				item.Error = "Database error"
			}
		}
		items = append(items, item)
	}

	return &command.BulkDeleteCommandResult{Items: items}, nil
}
