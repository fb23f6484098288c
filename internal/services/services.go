package services

import "github.com/adanyl0v/go-task-tracker/internal/models"

const MaxDescriptionLength = 500

// ValidationError is returned when task input breaks a content rule.
// Callers are expected to retry with corrected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError is returned when an operation targets a task id that
// is not in the store.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

var (
	ErrTitleRequired      = &ValidationError{Message: "Title is required"}
	ErrDescriptionTooLong = &ValidationError{Message: "Description must not exceed 500 characters"}
	ErrTaskNotFound       = &NotFoundError{Message: "Task not found"}
)

type TaskService interface {
	// ListTasks returns every stored task in insertion order.
	// The result is empty, never nil, when there are no tasks.
	ListTasks() []*models.Task

	// GetTask returns the task with the given id. The boolean is
	// false if no such task exists; absence is not an error.
	GetTask(id string) (*models.Task, bool)

	// CreateTask validates the input, assigns a fresh id and timestamps
	// and stores the new task.
	//
	// It returns ErrTitleRequired if the trimmed title is empty or
	// ErrDescriptionTooLong if the trimmed description exceeds
	// MaxDescriptionLength characters.
	CreateTask(input models.CreateTaskInput) (*models.Task, error)

	// UpdateTask applies the fields set in input to the task and
	// refreshes its UpdatedAt, even if no value actually changes.
	//
	// It returns ErrTaskNotFound if the task doesn't exist, then the
	// same validation errors as CreateTask for any set field.
	UpdateTask(id string, input models.UpdateTaskInput) (*models.Task, error)

	// DeleteTask removes the task and reports whether it existed.
	DeleteTask(id string) bool

	// Clear removes every task. It exists to isolate tests and is not
	// routed over HTTP.
	Clear()
}
