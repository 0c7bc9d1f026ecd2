// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// listTodos handles GET /todos.
//
// Query parameters, all optional:
//   - skip, limit: pagination (limit defaults to [models.DefaultPageLimit])
//   - id: exact todo id
//   - status: exact completion flag ("true" / "false")
//   - q: case-insensitive substring of the task
//   - order: "asc" (default) or "desc" by id
func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	query, err := parseTodoQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	todos, err := h.services.TodoService.ListFor(ctx, user, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

// createTodo handles POST /todos with a JSON body {"task", "status"}.
func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.TodoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createTodo").Msg("invalid JSON was passed")
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	todo, err := h.services.TodoService.CreateFor(ctx, user, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusCreated)
}

// getTodo handles GET /todos/{id}.
func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	id, err := todoIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.GetFor(ctx, user, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

// updateTodo handles PUT /edit-todo with a JSON body {"id", "task"?, "status"?}.
// Only the fields present in the body are changed.
func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.TodoUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateTodo").Msg("invalid JSON was passed")
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if req.ID == nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidTodoID))
		return
	}

	todo, err := h.services.TodoService.UpdateFor(ctx, user, *req.ID, req.TodoPatch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

// deleteTodo handles DELETE /delete-todo/{id}.
func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthenticated)
		return
	}

	id, err := todoIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.TodoService.DeleteFor(ctx, user, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("todo %d deleted", id),
	}, http.StatusOK)
}

func todoIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrInvalidPathParam, raw)
	}
	return id, nil
}

func parseTodoQuery(r *http.Request) (models.TodoQuery, error) {
	values := r.URL.Query()
	query := models.TodoQuery{
		Page: models.Page{Limit: models.DefaultPageLimit},
	}

	parseInt := func(name string, dst *int) error {
		raw := values.Get(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
		}
		*dst = v
		return nil
	}

	if err := parseInt("skip", &query.Page.Skip); err != nil {
		return models.TodoQuery{}, err
	}
	if err := parseInt("limit", &query.Page.Limit); err != nil {
		return models.TodoQuery{}, err
	}

	if raw := values.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.TodoQuery{}, fmt.Errorf("%w: id=%q", ErrInvalidQueryParam, raw)
		}
		query.Filter.ID = &id
	}

	if raw := values.Get("status"); raw != "" {
		status, err := strconv.ParseBool(raw)
		if err != nil {
			return models.TodoQuery{}, fmt.Errorf("%w: status=%q", ErrInvalidQueryParam, raw)
		}
		query.Filter.Status = &status
	}

	query.Filter.TaskContains = strings.TrimSpace(values.Get("q"))
	query.Order = models.SortOrder(strings.ToLower(values.Get("order")))

	return query, nil
}
