package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// TokenService issues and verifies signed bearer tokens whose subject is a
// username.
type TokenService interface {
	Issue(ctx context.Context, subject string) (models.Token, error)

	// Verify returns the token subject or ErrInvalidToken. The caller cannot
	// tell a bad signature from an expired token.
	Verify(ctx context.Context, raw string) (string, error)
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// Authenticate resolves a raw bearer token to an active user or returns
	// ErrUnauthenticated.
	Authenticate(ctx context.Context, rawToken string) (models.User, error)

	// RequireAdmin returns ErrForbidden unless user is an admin.
	RequireAdmin(ctx context.Context, user models.User) error
}

// TodoService is the only way handlers reach todos. Every method is scoped to
// the given user; another user's todo is reported as ErrTodoNotFound.
type TodoService interface {
	CreateFor(ctx context.Context, user models.User, req models.TodoCreateRequest) (models.Todo, error)
	ListFor(ctx context.Context, user models.User, query models.TodoQuery) ([]models.Todo, error)
	GetFor(ctx context.Context, user models.User, id int64) (models.Todo, error)
	UpdateFor(ctx context.Context, user models.User, id int64, patch models.TodoPatch) (models.Todo, error)
	DeleteFor(ctx context.Context, user models.User, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
