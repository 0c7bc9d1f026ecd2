package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// dummyPassword is hashed once per service at the configured cost. Unknown
// usernames are verified against that hash so both Login branches spend the
// same bcrypt work.
const dummyPassword = "go-todo-keeper/unknown-user"

func newDummyPasswordHash(cost int) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		hash, _ = bcrypt.GenerateFromPassword([]byte(dummyPassword), bcrypt.DefaultCost)
	}
	return hash
}

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, token issuance and the
// bearer-token guard.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher       crypto.PasswordHasher
	tokenService TokenService
	validator    validators.Validator

	// dummyHash is verified against when the username is unknown.
	dummyHash string

	attempts     *LoginAttemptTracker

	// admins holds usernames that are granted the admin flag at registration.
	admins map[string]struct{}

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokenService TokenService,
	attempts *LoginAttemptTracker,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	admins := make(map[string]struct{}, len(cfg.AdminUsernames))
	for _, name := range cfg.AdminUsernames {
		if name = strings.TrimSpace(name); name != "" {
			admins[name] = struct{}{}
		}
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		validator:      validators.NewUserValidator(),
		dummyHash:      string(newDummyPasswordHash(cfg.PasswordHashCost)),
		attempts:       attempts,
		admins:         admins,
		logger:         logger,
	}
}

// Register creates a new active user account with a hashed password.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided wrapping the validator error.
//   - store.ErrUserAlreadyExists if the username or email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	_, isAdmin := a.admins[req.Username]
	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Bool("is_admin", user.IsAdmin).Msg("user registered")
	return user, nil
}

// Login checks the credentials and issues a bearer token.
//
// Unknown username, inactive account and wrong password all return
// ErrInvalidCredentials. After too many failures the username is locked and
// ErrTooManyLoginAttempts is returned without checking the password.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, ErrInvalidCredentials
	}

	if a.attempts.Locked(req.Username) {
		log.Warn().Str("username", req.Username).Msg("login refused: too many failed attempts")
		return models.Token{}, ErrTooManyLoginAttempts
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		a.hasher.Verify(ctx, req.Password, a.dummyHash)
		a.attempts.Fail(req.Username)
		log.Debug().Str("username", req.Username).Msg("login failed: unknown user")
		return models.Token{}, ErrInvalidCredentials
	case err != nil:
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(ctx, req.Password, user.PasswordHash) || !user.IsActive {
		a.attempts.Fail(req.Username)
		log.Debug().Int64("user_id", user.UserID).Bool("is_active", user.IsActive).Msg("login failed")
		return models.Token{}, ErrInvalidCredentials
	}

	a.attempts.Reset(req.Username)

	token, err := a.tokenService.Issue(ctx, user.Username)
	if err != nil {
		return models.Token{}, err
	}

	log.Info().Int64("user_id", user.UserID).Time("expires_at", token.ExpiresAt).Msg("token issued")
	return token, nil
}

func (a *authService) Authenticate(ctx context.Context, rawToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	if rawToken == "" {
		return models.User{}, ErrUnauthenticated
	}

	username, err := a.tokenService.Verify(ctx, rawToken)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("token subject no longer exists")
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		return models.User{}, fmt.Errorf("loading token subject: %w", err)
	}

	if !user.IsActive {
		log.Debug().Int64("user_id", user.UserID).Msg("token subject is inactive")
		return models.User{}, ErrUnauthenticated
	}

	return user, nil
}

func (a *authService) RequireAdmin(ctx context.Context, user models.User) error {
	if !user.IsAdmin {
		logger.FromContext(ctx).Debug().Int64("user_id", user.UserID).Msg("admin capability required")
		return ErrForbidden
	}
	return nil
}
