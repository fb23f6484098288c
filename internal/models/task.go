package models

import "time"

type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
}

// UpdateTaskInput carries a partial update. Only fields with Set == true
// are applied; an unset field keeps its stored value.
type UpdateTaskInput struct {
	Title       Optional[string]
	Description Optional[string]
	Completed   Optional[bool]
}

// Empty reports whether no field is set.
func (in UpdateTaskInput) Empty() bool {
	return !in.Title.Set && !in.Description.Set && !in.Completed.Set
}
