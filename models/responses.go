// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Kind is a stable machine-readable error class, e.g. "not_found".
	Kind string `json:"kind"`

	// Message is a human-readable description safe to show to clients.
	Message string `json:"message"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
