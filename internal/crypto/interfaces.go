package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks plaintext candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Two calls with the same input
	// produce different outputs.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed hash yields
	// false, never an error.
	Verify(ctx context.Context, plaintext, hash string) bool
}
