// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// tokenService is the HS256 JWT implementation of [TokenService].
// All state is read-only after construction.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey []byte

	// issuer is the "iss" claim embedded in every token. Tokens whose issuer
	// does not match are rejected.
	issuer string

	// ttl controls how long a newly issued token remains valid.
	ttl time.Duration

	// now is the clock; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the application config.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey: []byte(cfg.TokenSignKey),
		issuer:  cfg.TokenIssuer,
		ttl:     cfg.TokenDuration,
		now:     time.Now,
		logger:  logger,
	}
}

// Issue signs a token carrying sub, iss, iat and exp = iat + ttl.
func (s *tokenService) Issue(ctx context.Context, subject string) (models.Token, error) {
	if subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenCreationFailed)
	}

	now := s.now()
	claims := &jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{
		SignedString: signed,
		Subject:      subject,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// Verify checks the HS256 signature, the issuer and the expiry, in that
// order, and returns the subject. Every failure is reported as
// [ErrInvalidToken]; the log records which check failed.
func (s *tokenService) Verify(ctx context.Context, raw string) (string, error) {
	log := logger.FromContext(ctx)

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return s.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		event := log.Debug().Str("func", "*tokenService.Verify")
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			event.Msg("token expired")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			event.Msg("token signature is invalid")
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			event.Msg("token issuer mismatch")
		default:
			event.Err(err).Msg("malformed token")
		}
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		log.Debug().Str("func", "*tokenService.Verify").Msg("token has no subject")
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
