// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrString(s string) *string { return &s }
func ptrBool(b bool) *bool       { return &b }
func ptrInt64(i int64) *int64    { return &i }

// ---------------------------------------------------------------------------
// NormalizeTask
// ---------------------------------------------------------------------------

func TestNormalizeTask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"buy milk", "Buy Milk"},
		{"  walk the dog  ", "Walk The Dog"},
		{"SHOUTING TASK", "Shouting Task"},
		{"buy    milk", "Buy Milk"},
		{"\tfeed\n the  cat ", "Feed The Cat"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTask(tt.in))
		})
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestTodoValidator_UnsupportedType(t *testing.T) {
	err := NewTodoValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestTodoValidator_UnknownField(t *testing.T) {
	err := NewTodoValidator().Validate(context.Background(), models.TodoCreateRequest{Task: "Abc"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestTodoValidator_Create(t *testing.T) {
	tests := []struct {
		name    string
		task    string
		wantErr error
	}{
		{name: "valid", task: "Buy Milk"},
		{name: "minimum length", task: "Abc"},
		{name: "maximum length", task: strings.Repeat("a", 100)},
		{name: "too short", task: "Ab", wantErr: ErrInvalidTaskLength},
		{name: "too long", task: strings.Repeat("a", 101), wantErr: ErrInvalidTaskLength},
		{name: "empty", task: "", wantErr: ErrInvalidTaskLength},
		{name: "punctuation", task: "Buy milk!", wantErr: ErrInvalidTaskCharset},
		{name: "non ascii", task: "Café time", wantErr: ErrInvalidTaskCharset},
	}

	v := NewTodoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &models.TodoCreateRequest{Task: tt.task})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestTodoValidator_Update(t *testing.T) {
	tests := []struct {
		name    string
		req     models.TodoUpdateRequest
		wantErr error
	}{
		{
			name: "task only",
			req:  models.TodoUpdateRequest{ID: ptrInt64(1), TodoPatch: models.TodoPatch{Task: ptrString("New Task")}},
		},
		{
			name: "status only",
			req:  models.TodoUpdateRequest{ID: ptrInt64(1), TodoPatch: models.TodoPatch{Status: ptrBool(true)}},
		},
		{
			name: "id zero is present",
			req:  models.TodoUpdateRequest{ID: ptrInt64(0), TodoPatch: models.TodoPatch{Status: ptrBool(false)}},
		},
		{
			name:    "missing id",
			req:     models.TodoUpdateRequest{TodoPatch: models.TodoPatch{Status: ptrBool(true)}},
			wantErr: ErrInvalidTodoID,
		},
		{
			name:    "empty patch",
			req:     models.TodoUpdateRequest{ID: ptrInt64(1)},
			wantErr: ErrNoFieldsToUpdate,
		},
		{
			name:    "bad task",
			req:     models.TodoUpdateRequest{ID: ptrInt64(1), TodoPatch: models.TodoPatch{Task: ptrString("x")}},
			wantErr: ErrInvalidTaskLength,
		},
	}

	v := NewTodoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTodoValidator_PatchTaskFieldOnly(t *testing.T) {
	// An empty patch passes when only the task field is checked.
	err := NewTodoValidator().Validate(context.Background(), models.TodoPatch{}, FieldTask)
	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Query
// ---------------------------------------------------------------------------

func TestTodoValidator_Query(t *testing.T) {
	tests := []struct {
		name    string
		query   models.TodoQuery
		wantErr error
	}{
		{name: "defaults", query: models.TodoQuery{Page: models.Page{Limit: 10}}},
		{name: "limit zero", query: models.TodoQuery{Page: models.Page{Limit: 0}}},
		{name: "limit max", query: models.TodoQuery{Page: models.Page{Limit: 100}}},
		{name: "limit over max", query: models.TodoQuery{Page: models.Page{Limit: 101}}, wantErr: ErrInvalidLimit},
		{name: "negative limit", query: models.TodoQuery{Page: models.Page{Limit: -1}}, wantErr: ErrInvalidLimit},
		{name: "negative skip", query: models.TodoQuery{Page: models.Page{Skip: -1, Limit: 10}}, wantErr: ErrInvalidSkip},
		{name: "desc order", query: models.TodoQuery{Order: models.SortDesc, Page: models.Page{Limit: 10}}},
		{name: "bad order", query: models.TodoQuery{Order: "sideways", Page: models.Page{Limit: 10}}, wantErr: ErrInvalidSortOrder},
	}

	v := NewTodoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.query)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
