package entities

import (
	"errors"
	"strings"
	"time"
)

const DefaultPriority = "Medium"

// Task is owned by exactly one user; every mutation is scoped to that owner.
// Priority is stored as free text; the reference client only ever sends
// High, Medium or Low.
type Task struct {
	Id          int64
	UserId      int64
	CreatedAt   time.Time
	Title       string
	Description *string
	Priority    string
	DueDate     *string
	Completed   bool
}

func NewTask(userId int64, title string, description, priority, dueDate *string) *Task {
	task := &Task{
		UserId:      userId,
		CreatedAt:   time.Now(),
		Title:       title,
		Description: description,
		Priority:    DefaultPriority,
		DueDate:     dueDate,
	}
	if priority != nil {
		task.Priority = *priority
	}
	return task
}

func (t *Task) validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title must not be empty")
	}
	if t.UserId == 0 {
		return errors.New("task must have an owning user")
	}
	return nil
}

// TaskPatch carries a partial update. Nil fields are left untouched; at
// least one field must be set for the patch to be applicable.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *string
	Completed   *bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.DueDate == nil && p.Completed == nil
}

type ValidatedTask struct {
	*Task
}

func NewValidatedTask(task *Task) (*ValidatedTask, error) {
	if err := task.validate(); err != nil {
		return nil, err
	}

	return &ValidatedTask{Task: task}, nil
}

func (vt *ValidatedTask) GetTask() *Task {
	return vt.Task
}
