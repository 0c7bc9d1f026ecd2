// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortOrder is the ordering of todos by id.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	// DefaultPageLimit is used when the client does not pass limit.
	DefaultPageLimit = 10

	// MaxPageLimit is the largest accepted limit.
	MaxPageLimit = 100
)

// TodoFilter narrows a todo listing. Nil pointers mean "no constraint";
// an explicit zero value is a real constraint.
type TodoFilter struct {
	ID           *int64
	Status       *bool
	TaskContains string

	// OwnerID is set only by the service layer from the authenticated user.
	OwnerID *int64
}

// Page is skip/limit pagination.
type Page struct {
	Skip  int
	Limit int
}

// TodoQuery combines filter, sort and pagination for a listing.
type TodoQuery struct {
	Filter TodoFilter
	Order  SortOrder
	Page   Page
}
