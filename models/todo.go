// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Todo is a single task owned by a user.
type Todo struct {
	// ID is the server-assigned identifier of the todo.
	ID int64 `json:"id"`

	// Task is the normalized (title-cased) task text.
	Task string `json:"task"`

	// Status reports whether the task is completed.
	Status bool `json:"status"`

	// OwnerID is the UserID of the owner. It is always taken from the
	// authenticated principal and never from the request body.
	OwnerID int64 `json:"owner_id"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoCreateRequest is the body of POST /todos.
type TodoCreateRequest struct {
	Task   string `json:"task"`
	Status bool   `json:"status"`
}

// TodoPatch describes a sparse update: only non-nil fields are written.
type TodoPatch struct {
	Task   *string `json:"task,omitempty"`
	Status *bool   `json:"status,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Task == nil && p.Status == nil
}

// TodoUpdateRequest is the body of PUT /edit-todo.
type TodoUpdateRequest struct {
	ID *int64 `json:"id"`
	TodoPatch
}
