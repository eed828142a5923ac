package repositories

import (
	"taskboard/internal/domain/entities"
)

type TaskRepository interface {
	// Create persists a new task and returns the stored row.
	Create(task *entities.ValidatedTask) (*entities.Task, error)

	// ListByUser returns the user's tasks ordered by creation time
	// descending.
	ListByUser(userId int64) ([]entities.Task, error)

	// Update applies the non-nil patch fields to the task matching both
	// taskId and userId. A row that does not exist or belongs to another
	// user yields a domain.NotFoundError; the two cases are not
	// distinguished.
	Update(userId, taskId int64, patch entities.TaskPatch) (*entities.Task, error)

	// Delete removes the task matching both taskId and userId, under the
	// same not-found contract as Update.
	Delete(userId, taskId int64) error
}
