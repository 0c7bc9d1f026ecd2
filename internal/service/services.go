package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	TodoService    TodoService
	AppInfoService AppInfoService
}

func NewServices(
	repositories *store.Repositories,
	hasher crypto.PasswordHasher,
	attempts *LoginAttemptTracker,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, hasher, tokenService, attempts, cfg.App, logger),
		TokenService:   tokenService,
		TodoService:    NewTodoService(repositories.TodoRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
