package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var selectUserColumns = regexp.QuoteMeta("SELECT id, username, email, hashed_password, is_active, is_admin, created_at FROM users")

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "hashed_password", "is_active", "is_admin", "created_at"})
}

// ─── CreateUser ───────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	// Arrange
	repo, mock := newTestUserRepo(t)
	user := models.User{Username: "john", Email: "john@example.com", PasswordHash: "hash", IsActive: true}

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO users (username,email,hashed_password,is_active,is_admin,created_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id")).
		WithArgs("john", "john@example.com", "hash", true, false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	// Act
	created, err := repo.CreateUser(context.Background(), user)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, "john", created.Username)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

// ─── FindUserByUsername / FindUserByID ───────────────────────────────────────

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(selectUserColumns + regexp.QuoteMeta(" WHERE username = $1")).
		WithArgs("john").
		WillReturnRows(userRows().AddRow(1, "john", "john@example.com", "hash", true, false, now))

	found, err := repo.FindUserByUsername(context.Background(), "john")

	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
	assert.Equal(t, "john@example.com", found.Email)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.True(t, found.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(selectUserColumns).
		WithArgs("ghost").
		WillReturnRows(userRows())

	_, err := repo.FindUserByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(selectUserColumns).
		WithArgs("john").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(selectUserColumns).
		WithArgs("john").
		WillReturnRows(userRows().AddRow(1, "john", "j@x.io", "hash", true, false, time.Now()))

	found, err := repo.FindUserByUsername(context.Background(), "john")

	require.NoError(t, err)
	assert.Equal(t, "john", found.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(selectUserColumns).
		WithArgs("john").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByUsername(context.Background(), "john")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	// non-retryable errors are not retried
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(selectUserColumns + regexp.QuoteMeta(" WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(userRows().AddRow(3, "kate", "k@x.io", "hash", false, true, time.Now()))

	found, err := repo.FindUserByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "kate", found.Username)
	assert.False(t, found.IsActive)
	assert.True(t, found.IsAdmin)
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(selectUserColumns).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // intentionally wrong shape

	_, err := repo.FindUserByID(context.Background(), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

// ─── SQLite integration ───────────────────────────────────────────────────────

func TestUserRepository_SQLite_RoundTrip(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Positive(t, created.UserID)

	byName, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, byName.UserID)
	assert.Equal(t, "$2a$10$hash", byName.PasswordHash)
	assert.True(t, byName.IsActive)
	assert.False(t, byName.IsAdmin)
	assert.WithinDuration(t, created.CreatedAt, byName.CreatedAt, time.Second)

	byID, err := repo.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	_, err = repo.FindUserByID(ctx, created.UserID+100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_SQLite_DuplicateEmail(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "alice", Email: "shared@example.com", PasswordHash: "h", IsActive: true})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Username: "bob", Email: "shared@example.com", PasswordHash: "h", IsActive: true})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserRepository_SQLite_ConcurrentDuplicateRegistration(t *testing.T) {
	// Arrange
	db := newSQLiteDB(t)
	repo := NewUserRepository(db, logger.Nop())
	const attempts = 10

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	// Act
	for i := 0; i < attempts; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateUser(context.Background(), models.User{
				Username:     "alice",
				Email:        fmt.Sprintf("alice%d@example.com", i),
				PasswordHash: "h",
				IsActive:     true,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrUserAlreadyExists):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}
