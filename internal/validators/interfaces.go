// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user credentials, todo payloads and list queries
// before they reach storage.
//
// Every validator reports failures as sentinel errors from this package
// joined together, so callers can test for a specific rule with errors.Is
// and still render all problems at once.
package validators

import "context"

// Validator checks one of the request models it knows about.
//
// When fields are given only those fields are checked; an unknown field name
// or an unsupported model type is an error.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
