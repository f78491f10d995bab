package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		CipherPassword     string   `json:"cipher_password"`
		CipherSalt         string   `json:"cipher_salt"`
		EmailIndexKey      string   `json:"email_index_key"`
		TokenSignKey       string   `json:"token_sign_key"`
		TokenSignAlgorithm string   `json:"token_sign_algorithm"`
		TokenIssuer        string   `json:"token_issuer"`
		SessionTTL         Duration `json:"session_ttl"`
		HashIterations     int      `json:"hash_iterations"`
		UnifyLoginErrors   bool     `json:"unify_login_errors"`
		LogLevel           string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver   string `json:"driver"`
			DSN      string `json:"dsn"`
			Host     string `json:"host"`
			Port     int    `json:"port"`
			User     string `json:"user"`
			Password string `json:"password"`
			Name     string `json:"name"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SweepQueueSize int      `json:"sweep_queue_size"`
		PurgeInterval  Duration `json:"purge_interval"`
		DrainTimeout   Duration `json:"drain_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			CipherPassword:     jsonCfg.App.CipherPassword,
			CipherSalt:         jsonCfg.App.CipherSalt,
			EmailIndexKey:      jsonCfg.App.EmailIndexKey,
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenSignAlgorithm: jsonCfg.App.TokenSignAlgorithm,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			SessionTTL:         time.Duration(jsonCfg.App.SessionTTL),
			HashIterations:     jsonCfg.App.HashIterations,
			UnifyLoginErrors:   jsonCfg.App.UnifyLoginErrors,
			LogLevel:           jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:   jsonCfg.Storage.DB.Driver,
				DSN:      jsonCfg.Storage.DB.DSN,
				Host:     jsonCfg.Storage.DB.Host,
				Port:     jsonCfg.Storage.DB.Port,
				User:     jsonCfg.Storage.DB.User,
				Password: jsonCfg.Storage.DB.Password,
				Name:     jsonCfg.Storage.DB.Name,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			SweepQueueSize: jsonCfg.Workers.SweepQueueSize,
			PurgeInterval:  time.Duration(jsonCfg.Workers.PurgeInterval),
			DrainTimeout:   time.Duration(jsonCfg.Workers.DrainTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
