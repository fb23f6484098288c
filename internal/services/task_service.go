package services

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

type TaskServiceOption func(*taskServiceImpl)

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *taskServiceImpl) {
		s.now = now
	}
}

// WithIDGenerator overrides how new task ids are produced.
func WithIDGenerator(newID func() string) TaskServiceOption {
	return func(s *taskServiceImpl) {
		s.newID = newID
	}
}

type taskServiceImpl struct {
	logger zerolog.Logger

	// mu is held for the whole of every operation so no caller can
	// observe a partially applied mutation.
	mu    sync.Mutex
	store *taskStore

	now   func() time.Time
	newID func() string
}

func NewTaskService(
	logger zerolog.Logger,
	opts ...TaskServiceOption,
) TaskService {
	s := &taskServiceImpl{
		logger: logger,
		store:  newTaskStore(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *taskServiceImpl) ListTasks() []*models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.store.list()
	tasks := make([]*models.Task, len(stored))
	for i := range stored {
		tasks[i] = &stored[i]
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("listed tasks")
	return tasks
}

func (s *taskServiceImpl) GetTask(id string) (*models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.store.get(id)
	if !ok {
		s.logger.Debug().
			Str("task_id", id).
			Msg("task not found")
		return nil, false
	}
	return &task, true
}

func (s *taskServiceImpl) CreateTask(input models.CreateTaskInput) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title, err := validateTitle(input.Title)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("rejected task")
		return nil, err
	}

	var description string
	if input.Description != nil {
		description, err = validateDescription(*input.Description)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Msg("rejected task")
			return nil, err
		}
	}

	id := s.newID()
	for {
		if _, exists := s.store.get(id); !exists {
			break
		}
		s.logger.Warn().
			Str("task_id", id).
			Msg("generated task id collides, retrying")
		id = s.newID()
	}

	now := s.now()
	task := models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.store.put(task)
	s.logger.Debug().
		Int("store_size", s.store.count()).
		Msg("inserted task")

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return &task, nil
}

func (s *taskServiceImpl) UpdateTask(id string, input models.UpdateTaskInput) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.store.get(id)
	if !ok {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	if title, set := input.Title.Get(); set {
		trimmed, err := validateTitle(title)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("task_id", id).
				Msg("rejected task update")
			return nil, err
		}
		task.Title = trimmed
	}
	if description, set := input.Description.Get(); set {
		trimmed, err := validateDescription(description)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("task_id", id).
				Msg("rejected task update")
			return nil, err
		}
		task.Description = trimmed
	}
	if completed, set := input.Completed.Get(); set {
		task.Completed = completed
	}

	task.UpdatedAt = s.now()
	s.store.put(task)
	s.logger.Debug().
		Str("task_id", id).
		Bool("title_set", input.Title.Set).
		Bool("description_set", input.Description.Set).
		Bool("completed_set", input.Completed.Set).
		Msg("replaced task")

	s.logger.Info().
		Str("task_id", id).
		Msg("updated task")
	return &task, nil
}

func (s *taskServiceImpl) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.delete(id) {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return false
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return true
}

func (s *taskServiceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.clear()
	s.logger.Info().Msg("cleared tasks")
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	return title, nil
}

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return description, nil
}
