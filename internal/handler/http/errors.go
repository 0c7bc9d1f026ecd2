// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not have the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer scheme but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQueryParam is returned for list query parameters that do not
	// parse (e.g. limit=abc, status=maybe).
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrInvalidPathParam is returned when {id} in the path is not an integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	errRouteNotFound = errors.New("route not found")
)
