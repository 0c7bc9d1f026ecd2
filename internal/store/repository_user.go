package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var userColumns = []string{"id", "username", "email", "hashed_password", "is_active", "is_admin", "created_at"}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID. CreatedAt is stamped here so that both drivers return
// the same value without a round trip.
//
// Error handling:
//   - UNIQUE violation (Postgres 23505, SQLite constraint unique) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.db.builder.
		Insert(models.User{}.TableName()).
		Columns("username", "email", "hashed_password", "is_active", "is_admin", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.IsActive, user.IsAdmin, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("user already exists")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByUsername retrieves a user by exact username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

// FindUserByID retrieves a user by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&found.UserID,
			&found.Username,
			&found.Email,
			&found.PasswordHash,
			&found.IsActive,
			&found.IsAdmin,
			&found.CreatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
