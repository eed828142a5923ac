package db

import (
	"time"
)

type UserModel struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type TaskModel struct {
	Id          int64 `gorm:"primaryKey;autoIncrement"`
	UserId      int64 `gorm:"index;not null"`
	CreatedAt   time.Time
	Title       string `gorm:"not null"`
	Description *string
	Priority    string `gorm:"default:Medium"`
	DueDate     *string
	Completed   bool `gorm:"default:false"`

	// Pointer so a create never cascades a zero-value owner; the field
	// exists only to emit the foreign key constraint in the migration.
	User *UserModel `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
