package model

import (
	"encoding/json"
	"time"
)

// TaskStatus represents the progress of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// UnmarshalJSON accepts any JSON value. Non-string values decode to the empty status,
// which is not Valid, so a patch carrying one leaves the status alone.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = TaskStatus(v)
	return nil
}

// Task is a unit of work owned by a single user.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description *string    `json:"description" gorm:"size:500"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(50);default:'pending'"`
	CreatedAt   time.Time  `json:"created_at" gorm:"<-:create"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID"`
}
