// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/workers"
)

// ErrPasswordTooLong is returned for passwords over bcrypt's 72-byte input limit.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// bcryptHasher is the bcrypt implementation of [PasswordHasher]. Work is
// scheduled on a bounded pool so that a burst of logins cannot starve the
// HTTP server of CPU.
type bcryptHasher struct {
	cost   int
	pool   *workers.Pool
	logger *logger.Logger
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
func NewBcryptHasher(cost int, pool *workers.Pool, log *logger.Logger) PasswordHasher {
	return &bcryptHasher{
		cost:   cost,
		pool:   pool,
		logger: log,
	}
}

func (b *bcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	var (
		hash    []byte
		hashErr error
	)

	err := b.pool.Do(ctx, func() {
		hash, hashErr = bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	})
	if err != nil {
		return "", err
	}
	if errors.Is(hashErr, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if hashErr != nil {
		b.logger.Err(hashErr).Str("func", "*bcryptHasher.Hash").Msg("bcrypt failed")
		return "", fmt.Errorf("hashing password: %w", hashErr)
	}

	return string(hash), nil
}

func (b *bcryptHasher) Verify(ctx context.Context, plaintext, hash string) bool {
	var cmpErr error

	err := b.pool.Do(ctx, func() {
		cmpErr = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	})
	if err != nil {
		return false
	}

	switch {
	case cmpErr == nil:
		return true
	case errors.Is(cmpErr, bcrypt.ErrMismatchedHashAndPassword):
		return false
	default:
		b.logger.Warn().Err(cmpErr).Str("func", "*bcryptHasher.Verify").Msg("stored hash is not a bcrypt hash")
		return false
	}
}
