package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	StatusOngoing = "ongoing"
	StatusMissed  = "missed"
)

const (
	TypeUrgent = "urgent"
	TypeCommon = "common"
	TypeMissed = "missed"
)

// Task is owned by its (username, name) pair; name is not globally
// unique. Point is rolled at creation and forced to zero once the task
// becomes missed.
type Task struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"index:idx_tasks_owner_name;not null"`
	Description string    `gorm:"not null"`
	Priority    string    `gorm:"not null"`
	Deadline    time.Time `gorm:"index;not null"`
	Status      string    `gorm:"not null;default:ongoing"`
	Type        string    `gorm:"index;not null"`
	Point       int       `gorm:"not null"`
	Username    string    `gorm:"index:idx_tasks_owner_name;index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}
