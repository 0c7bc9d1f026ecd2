package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository persists user accounts. Uniqueness of username and email is
// enforced by the database, so concurrent registrations cannot both succeed.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt filled in.
	// Returns ErrUserAlreadyExists on a username or email collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns ErrUserNotFound when no row matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TodoRepository persists todos. It is owner-agnostic: callers scope every
// call by passing an owner filter or checking OwnerID themselves.
type TodoRepository interface {
	List(ctx context.Context, query models.TodoQuery) ([]models.Todo, error)
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)

	// Get returns ErrTodoNotFound when no row matches.
	Get(ctx context.Context, id int64) (models.Todo, error)

	// Update applies only the non-nil fields of patch and returns the
	// resulting row, or ErrTodoNotFound.
	Update(ctx context.Context, id int64, patch models.TodoPatch) (models.Todo, error)

	// Delete returns ErrTodoNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
}
