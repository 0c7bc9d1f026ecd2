// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTask targets the todo description.
	FieldTask = "task"

	// FieldTodoID targets the id of the todo being edited.
	FieldTodoID = "id"

	// FieldPatch requires at least one patch field to be present.
	FieldPatch = "patch"

	// FieldSkip targets the page offset.
	FieldSkip = "skip"

	// FieldLimit targets the page size.
	FieldLimit = "limit"

	// FieldOrder targets the sort direction.
	FieldOrder = "order"
)

const (
	minTaskLength = 3
	maxTaskLength = 100
)

var taskCharset = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)

// NormalizeTask trims task, collapses inner whitespace runs to one space and
// converts it to title case, so " buy    milk" becomes "Buy Milk".
func NormalizeTask(task string) string {
	// cases.Caser is stateful and not safe for concurrent use
	return cases.Title(language.Und).String(strings.Join(strings.Fields(task), " "))
}

// TodoValidator implements [Validator] for todo payloads and list queries.
type TodoValidator struct{}

// NewTodoValidator constructs a new TodoValidator and returns it as the
// Validator interface.
func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.TodoCreateRequest / *models.TodoCreateRequest
//   - models.TodoUpdateRequest / *models.TodoUpdateRequest
//   - models.TodoPatch / *models.TodoPatch
//   - models.TodoQuery / *models.TodoQuery
func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TodoCreateRequest:
		return v.validateCreate(value, fields...)
	case *models.TodoCreateRequest:
		return v.validateCreate(*value, fields...)

	case models.TodoUpdateRequest:
		return v.validateUpdate(value, fields...)
	case *models.TodoUpdateRequest:
		return v.validateUpdate(*value, fields...)

	case models.TodoPatch:
		return v.validatePatch(value, fields...)
	case *models.TodoPatch:
		return v.validatePatch(*value, fields...)

	case models.TodoQuery:
		return v.validateQuery(value, fields...)
	case *models.TodoQuery:
		return v.validateQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateCreate(req models.TodoCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTask}
	}

	for _, f := range fields {
		switch f {
		case FieldTask:
			if err := validateTask(req.Task); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateUpdate(req models.TodoUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTodoID, FieldPatch, FieldTask}
	}

	for _, f := range fields {
		switch f {
		case FieldTodoID:
			if req.ID == nil {
				return ErrInvalidTodoID
			}
		case FieldPatch, FieldTask:
			if err := v.validatePatch(req.TodoPatch, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validatePatch(patch models.TodoPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldTask}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if patch.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTask:
			if patch.Task == nil {
				continue
			}
			if err := validateTask(*patch.Task); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateQuery(q models.TodoQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSkip, FieldLimit, FieldOrder}
	}

	for _, f := range fields {
		switch f {
		case FieldSkip:
			if q.Page.Skip < 0 {
				return ErrInvalidSkip
			}
		case FieldLimit:
			if q.Page.Limit < 0 || q.Page.Limit > models.MaxPageLimit {
				return ErrInvalidLimit
			}
		case FieldOrder:
			if q.Order != "" && q.Order != models.SortAsc && q.Order != models.SortDesc {
				return ErrInvalidSortOrder
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTask checks an already-normalized task string.
func validateTask(task string) error {
	n := utf8.RuneCountInString(task)
	if n < minTaskLength || n > maxTaskLength {
		return ErrInvalidTaskLength
	}
	if !taskCharset.MatchString(task) {
		return ErrInvalidTaskCharset
	}
	return nil
}
