package models

import "time"

// Task statuses. A transition into StatusCompleted stamps CompletedAt exactly
// once; re-entering the status later does not refresh it.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// DefaultTaskPriority is assigned when a task is created without one.
// Lower values are more urgent.
const DefaultTaskPriority = 3

// Task is a unit of work. DueDate and CompletedAt are nil when unset.
type Task struct {
	ID          string
	Name        string
	Description string
	DueDate     *time.Time
	Priority    int
	Status      string
	Tags        []string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
