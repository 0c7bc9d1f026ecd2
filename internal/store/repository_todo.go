// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var todoColumns = []string{"id", "task", "status", "owner_id", "created_at"}

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// todoRepository is the SQL implementation of [TodoRepository] over the
// "todos" table.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// List returns todos matching query.Filter ordered by id, then paged.
// Page bounds are expected to be validated by the caller.
func (r *todoRepository) List(ctx context.Context, query models.TodoQuery) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := r.buildListQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todos []models.Todo
	err = r.db.retry(ctx, func() error {
		var queryErr error
		todos, queryErr = r.queryTodos(ctx, sqlQuery, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.List").Msg("error listing todos")
		return nil, err
	}

	return todos, nil
}

func (r *todoRepository) buildListQuery(query models.TodoQuery) (string, []any, error) {
	b := r.db.builder.
		Select(todoColumns...).
		From(models.Todo{}.TableName())

	f := query.Filter
	if f.OwnerID != nil {
		b = b.Where(sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.ID != nil {
		b = b.Where(sq.Eq{"id": *f.ID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": *f.Status})
	}
	if f.TaskContains != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(f.TaskContains)) + "%"
		b = b.Where(sq.Expr(`LOWER(task) LIKE ? ESCAPE '\'`, pattern))
	}

	if query.Order == models.SortDesc {
		b = b.OrderBy("id DESC")
	} else {
		b = b.OrderBy("id ASC")
	}

	return b.
		Limit(uint64(query.Page.Limit)).
		Offset(uint64(query.Page.Skip)).
		ToSql()
}

func (r *todoRepository) queryTodos(ctx context.Context, query string, args []any) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 16)
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Task, &todo.Status, &todo.OwnerID, &todo.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

// Create inserts todo and returns it with ID and CreatedAt assigned.
func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.db.builder.
		Insert(models.Todo{}.TableName()).
		Columns("task", "status", "owner_id", "created_at").
		Values(todo.Task, todo.Status, todo.OwnerID, todo.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&todo.ID); err != nil {
		log.Err(err).Str("func", "*todoRepository.Create").Int64("owner_id", todo.OwnerID).Msg("error inserting todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return todo, nil
}

func (r *todoRepository) Get(ctx context.Context, id int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	err := r.db.retry(ctx, func() error {
		var err error
		todo, err = r.getWith(ctx, r.db.DB, id)
		return err
	})
	if err != nil && !errors.Is(err, ErrTodoNotFound) {
		log.Err(err).Str("func", "*todoRepository.Get").Int64("id", id).Msg("error getting todo")
	}
	return todo, err
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *todoRepository) getWith(ctx context.Context, q queryRower, id int64) (models.Todo, error) {
	query, args, err := r.db.builder.
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todo models.Todo
	err = q.QueryRowContext(ctx, query, args...).Scan(&todo.ID, &todo.Task, &todo.Status, &todo.OwnerID, &todo.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

// Update applies patch in a single UPDATE statement and reads the row back
// inside the same transaction.
func (r *todoRepository) Update(ctx context.Context, id int64, patch models.TodoPatch) (models.Todo, error) {
	log := logger.FromContext(ctx)

	set := make(map[string]any, 2)
	if patch.Task != nil {
		set["task"] = *patch.Task
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	query, args, err := r.db.builder.
		Update(models.Todo{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Update").Msg("error beginning transaction")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Update").Int64("id", id).Msg("error updating todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.Todo{}, ErrTodoNotFound
	}

	todo, err := r.getWith(ctx, tx, id)
	if err != nil {
		return models.Todo{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*todoRepository.Update").Msg("error committing transaction")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return todo, nil
}

func (r *todoRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Delete").Int64("id", id).Msg("error deleting todo")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
