package db

import (
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/domain"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task *entities.ValidatedTask) (*entities.Task, error) {
	taskEntity := task.GetTask()

	taskModel := TaskModel{
		UserId:      taskEntity.UserId,
		CreatedAt:   taskEntity.CreatedAt,
		Title:       taskEntity.Title,
		Description: taskEntity.Description,
		Priority:    taskEntity.Priority,
		DueDate:     taskEntity.DueDate,
		Completed:   taskEntity.Completed,
	}

	if err := r.db.Create(&taskModel).Error; err != nil {
		return nil, err
	}

	// Insert then fetch, two round trips. Not atomic, same as the HTTP
	// contract promises.
	return r.findById(taskModel.Id)
}

func (r *TaskRepository) ListByUser(userId int64) ([]entities.Task, error) {
	var taskModels []TaskModel
	err := r.db.Where("user_id = ?", userId).
		Order("created_at DESC, id DESC").
		Find(&taskModels).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, *r.mapToEntity(&taskModels[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) Update(userId, taskId int64, patch entities.TaskPatch) (*entities.Task, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}

	// Ownership lives in the WHERE clause: a task that exists but belongs
	// to someone else is indistinguishable from one that does not exist.
	result := r.db.Model(&TaskModel{}).
		Where("id = ? AND user_id = ?", taskId, userId).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("Task not found")
	}

	return r.findById(taskId)
}

func (r *TaskRepository) Delete(userId, taskId int64) error {
	result := r.db.Where("id = ? AND user_id = ?", taskId, userId).
		Delete(&TaskModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Task not found")
	}
	return nil
}

func (r *TaskRepository) findById(id int64) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.Where("id = ?", id).First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Task not found")
		}
		return nil, err
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) mapToEntity(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		Id:          taskModel.Id,
		UserId:      taskModel.UserId,
		CreatedAt:   taskModel.CreatedAt,
		Title:       taskModel.Title,
		Description: taskModel.Description,
		Priority:    taskModel.Priority,
		DueDate:     taskModel.DueDate,
		Completed:   taskModel.Completed,
	}
}
