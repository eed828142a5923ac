package common

import (
	"time"
)

// TaskResult is the wire shape of a task row. Description and DueDate are
// nullable columns and serialize as JSON null when unset.
type TaskResult struct {
	Id          int64     `json:"id"`
	UserId      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"due_date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}
