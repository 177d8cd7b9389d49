package domain

import "time"

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	Name      string
	DateAdded time.Time
	Done      bool
}

// Status returns the display label for the task's completion state.
func (t Task) Status() string {
	if t.Done {
		return "DONE"
	}
	return "PENDING"
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != ""
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
