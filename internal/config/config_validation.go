// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var supportedSignAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	switch {
	case app.CipherPassword == "", app.CipherSalt == "":
		return fmt.Errorf("%w: empty cipher password or salt", ErrInvalidAppConfigs)
	case app.EmailIndexKey == "":
		return fmt.Errorf("%w: empty email index key", ErrInvalidAppConfigs)
	case app.TokenSignKey == "":
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	case !slices.Contains(supportedSignAlgorithms, app.TokenSignAlgorithm):
		return fmt.Errorf("%w: unsupported token sign algorithm %q", ErrInvalidAppConfigs, app.TokenSignAlgorithm)
	case app.SessionTTL <= 0:
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidAppConfigs)
	case app.HashIterations < 0:
		return fmt.Errorf("%w: hash iterations must not be negative", ErrInvalidAppConfigs)
	}

	db := cfg.Storage.DB
	switch db.Driver {
	case DriverPostgres:
		if db.DSN == "" && (db.Host == "" || db.Name == "") {
			return fmt.Errorf("%w: postgres needs a dsn or host and name", ErrInvalidStorageConfigs)
		}
	case DriverSQLite:
		if db.DSN == "" && db.Name == "" {
			return fmt.Errorf("%w: sqlite needs a dsn or name", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SweepQueueSize <= 0 || cfg.Workers.PurgeInterval < 0 || cfg.Workers.DrainTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
