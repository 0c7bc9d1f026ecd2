package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type todoService struct {
	todoRepository store.TodoRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		validator:      validators.NewTodoValidator(),
		logger:         logger,
	}
}

// CreateFor normalizes the task text and stores a new todo owned by user.
// Any owner supplied by the client is ignored.
func (s *todoService) CreateFor(ctx context.Context, user models.User, req models.TodoCreateRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	req.Task = validators.NormalizeTask(req.Task)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	todo, err := s.todoRepository.Create(ctx, models.Todo{
		Task:    req.Task,
		Status:  req.Status,
		OwnerID: user.UserID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", user.UserID).Msg("todo creation failed")
		return models.Todo{}, fmt.Errorf("todo creation failed: %w", err)
	}

	log.Debug().Int64("todo_id", todo.ID).Int64("owner_id", todo.OwnerID).Msg("todo created")
	return todo, nil
}

// ListFor returns a page of user's todos. The owner filter always comes from
// user, never from query.
func (s *todoService) ListFor(ctx context.Context, user models.User, query models.TodoQuery) ([]models.Todo, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ownerID := user.UserID
	query.Filter.OwnerID = &ownerID

	todos, err := s.todoRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	return todos, nil
}

// GetFor returns the todo only when user owns it. A todo that exists but
// belongs to someone else is reported exactly like a missing one.
func (s *todoService) GetFor(ctx context.Context, user models.User, id int64) (models.Todo, error) {
	todo, err := s.todoRepository.Get(ctx, id)
	if errors.Is(err, store.ErrTodoNotFound) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("getting todo: %w", err)
	}

	if todo.OwnerID != user.UserID {
		logger.FromContext(ctx).Debug().
			Int64("todo_id", id).
			Int64("user_id", user.UserID).
			Msg("todo belongs to another user")
		return models.Todo{}, ErrTodoNotFound
	}

	return todo, nil
}

func (s *todoService) UpdateFor(ctx context.Context, user models.User, id int64, patch models.TodoPatch) (models.Todo, error) {
	if patch.Task != nil {
		task := validators.NormalizeTask(*patch.Task)
		patch.Task = &task
	}
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.GetFor(ctx, user, id); err != nil {
		return models.Todo{}, err
	}

	todo, err := s.todoRepository.Update(ctx, id, patch)
	if errors.Is(err, store.ErrTodoNotFound) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("updating todo: %w", err)
	}

	return todo, nil
}

func (s *todoService) DeleteFor(ctx context.Context, user models.User, id int64) error {
	if _, err := s.GetFor(ctx, user, id); err != nil {
		return err
	}

	err := s.todoRepository.Delete(ctx, id)
	if errors.Is(err, store.ErrTodoNotFound) {
		return ErrTodoNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("todo_id", id).Int64("user_id", user.UserID).Msg("todo deleted")
	return nil
}
