// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and ownership
// of todos. PasswordHash is produced by the credential hasher and is never
// serialized.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name. Immutable after registration.
	Username string `json:"username"`

	// Email is the unique email address of the user.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// IsActive reports whether the account may authenticate.
	IsActive bool `json:"is_active"`

	// IsAdmin grants the admin capability checked by RequireAdmin.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds credentials submitted to POST /login.
type LoginRequest struct {
	Username string
	Password string
}
