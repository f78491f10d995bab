package config

import "time"

// Default values. The secrets below exist only so that the server starts out
// of the box in development; every one of them must be overridden in
// production.
const (
	defaultCipherPassword     = "note-keeper-cipher-password"
	defaultCipherSalt         = "note-keeper-cipher-salt"
	defaultEmailIndexKey      = "note-keeper-email-index-key"
	defaultTokenSignKey       = "note-keeper-token-sign-key"
	defaultTokenSignAlgorithm = "HS256"
	defaultTokenIssuer        = "go-note-keeper"
	defaultSessionTTL         = 12 * time.Hour
	defaultHashIterations     = 5000
	defaultLogLevel           = "debug"

	defaultDBDriver = DriverPostgres
	defaultDBHost   = "localhost"
	defaultDBPort   = 5432
	defaultDBUser   = "myapp"
	defaultDBName   = "myapp"

	defaultHTTPAddress     = "localhost:3000"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second

	defaultSweepQueueSize = 256
	defaultDrainTimeout   = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CipherPassword:     defaultCipherPassword,
			CipherSalt:         defaultCipherSalt,
			EmailIndexKey:      defaultEmailIndexKey,
			TokenSignKey:       defaultTokenSignKey,
			TokenSignAlgorithm: defaultTokenSignAlgorithm,
			TokenIssuer:        defaultTokenIssuer,
			SessionTTL:         defaultSessionTTL,
			HashIterations:     defaultHashIterations,
			LogLevel:           defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDBDriver,
				Host:   defaultDBHost,
				Port:   defaultDBPort,
				User:   defaultDBUser,
				Name:   defaultDBName,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Workers: Workers{
			SweepQueueSize: defaultSweepQueueSize,
			DrainTimeout:   defaultDrainTimeout,
		},
	}
}
