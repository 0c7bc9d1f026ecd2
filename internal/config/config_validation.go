// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. The server must not start
// without a token sign key.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.HashConcurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
