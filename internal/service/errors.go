package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated covers every way a request can fail to resolve to an
	// active user: missing header, bad token, unknown or inactive subject.
	ErrUnauthenticated = errors.New("could not validate credentials")

	ErrInvalidCredentials   = errors.New("incorrect username or password")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")

	ErrInvalidToken        = errors.New("token is invalid or expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrForbidden = errors.New("not enough permissions")

	// ErrTodoNotFound is returned both for missing todos and for todos owned
	// by another user.
	ErrTodoNotFound = errors.New("todo not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
