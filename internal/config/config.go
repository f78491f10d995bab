// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the server.
// It is built once at startup and never mutated afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds cryptographic material, token parameters and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds settings of the session sweeper.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle and logging.
type App struct {
	// CipherPassword and CipherSalt feed the key-derivation function that
	// produces the email encryption key.
	// Env: APP_CIPHER_PASSWORD, APP_CIPHER_SALT
	CipherPassword string `env:"CIPHER_PASSWORD"`
	CipherSalt     string `env:"CIPHER_SALT"`

	// EmailIndexKey is the HMAC key of the deterministic email lookup index.
	// Env: APP_EMAIL_INDEX_KEY
	EmailIndexKey string `env:"EMAIL_INDEX_KEY"`

	// TokenSignKey is the shared secret used to sign and verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenSignAlgorithm is the HMAC algorithm of issued tokens
	// (HS256, HS384 or HS512).
	// Env: APP_TOKEN_SIGN_ALGORITHM
	TokenSignAlgorithm string `env:"TOKEN_SIGN_ALGORITHM"`

	// TokenIssuer is the "iss" claim embedded in, and required from, every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionTTL is the validity window of a session and its token.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// HashIterations is the number of extra digest rounds applied to passwords.
	// Env: APP_HASH_ITERATIONS
	HashIterations int `env:"HASH_ITERATIONS"`

	// UnifyLoginErrors makes login answer 403 for unknown emails too, instead
	// of 404, so that account existence is not disclosed.
	// Env: APP_UNIFY_LOGIN_ERRORS
	UnifyLoginErrors bool `env:"UNIFY_LOGIN_ERRORS"`

	// LogLevel is the global zerolog level.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the full connection string. When empty it is built from the
	// discrete parameters below.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Env: STORAGE_DB_HOST, STORAGE_DB_PORT, STORAGE_DB_USER,
	// STORAGE_DB_PASSWORD, STORAGE_DB_NAME
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
}

// ConnectionString returns DSN if set. Otherwise it assembles a PostgreSQL
// URL from the discrete parameters, or a file name for SQLite.
func (db DB) ConnectionString() string {
	if db.DSN != "" {
		return db.DSN
	}

	if db.Driver == DriverSQLite {
		return db.Name + ".db"
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: "sslmode=disable",
	}
	if db.Password != "" {
		u.User = url.UserPassword(db.User, db.Password)
	} else {
		u.User = url.User(db.User)
	}

	return u.String()
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration of the session sweeper.
type Workers struct {
	// SweepQueueSize is the capacity of the per-user sweep queue. Sweeps
	// submitted while the queue is full are dropped.
	// Env: WORKERS_SWEEP_QUEUE_SIZE
	SweepQueueSize int `env:"SWEEP_QUEUE_SIZE"`

	// PurgeInterval enables a periodic purge of all expired sessions.
	// Zero disables it.
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`

	// DrainTimeout bounds how long queued sweeps are processed on shutdown.
	// Env: WORKERS_DRAIN_TIMEOUT
	DrainTimeout time.Duration `env:"DRAIN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from defaults, environment variables, command-line flags and the optional
// JSON file, in that order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
