// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenTypeBearer is the token_type reported by POST /login.
const TokenTypeBearer = "bearer"

// Token is an issued bearer token together with the claims it carries.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string

	// Subject is the username the token was issued for.
	Subject string

	// IssuedAt and ExpiresAt bound the validity of the token.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// TokenResponse is the body returned by POST /login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
