// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-todo-keeper server. It is populated by merging defaults, a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and admin settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the password hashing pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify bearer tokens.
	// Required; the server refuses to start without it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"-"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// AdminUsernames lists usernames that receive the admin capability
	// when they register.
	// Env: APP_ADMIN_USERNAMES (comma separated)
	AdminUsernames []string `env:"ADMIN_USERNAMES" envSeparator:","`

	// DeleteRequiresAdmin gates DELETE /delete-todo/{id} behind the admin
	// capability.
	// Env: APP_DELETE_REQUIRES_ADMIN
	DeleteRequiresAdmin bool `env:"DELETE_REQUIRES_ADMIN"`

	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its shape: "postgres://" or "postgresql://"
	// URLs use pgx, anything else is treated as a SQLite file DSN
	// (e.g. "file:todos.db?_foreign_keys=on" or ":memory:").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"-"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the optional gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker pools.
type Workers struct {
	// HashConcurrency bounds how many bcrypt operations run at once.
	// Env: WORKERS_HASH_CONCURRENCY
	HashConcurrency int `env:"HASH_CONCURRENCY"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-todo-keeper",
			TokenDuration:    30 * time.Minute,
			PasswordHashCost: 10,
			Version:          "dev",
			LogLevel:         "debug",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			HashConcurrency: 4,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. .env file in the working directory, then environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
