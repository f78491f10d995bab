package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const defaultClientRequestTimeout = 10 * time.Second

// ClientConfig contains runtime configuration required by the command-line
// client.
type ClientConfig struct {
	// Adapter contains server connection settings.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// ClientAdapter contains network settings used by the client adapter.
type ClientAdapter struct {
	// HTTPAddress is the base URL or host:port of the note keeper server.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig builds the client configuration from defaults, environment
// variables and the flags found in args. It returns the positional arguments
// left after flag parsing.
//
// Flags:
//
//	-a server address (http://host:port or host:port)
//	-timeout request timeout (e.g., "10s")
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	defaults := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://" + defaultHTTPAddress,
			RequestTimeout: defaultClientRequestTimeout,
		},
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	var flagsCfg ClientConfig
	fs := flag.NewFlagSet("note-keeper-client", flag.ContinueOnError)
	fs.StringVar(&flagsCfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.DurationVar(&flagsCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	var mergeErr error
	for _, c := range []*ClientConfig{defaults, envCfg, &flagsCfg} {
		mergeErr = errors.Join(mergeErr, mergo.Merge(cfg, c, mergo.WithOverride))
	}
	if mergeErr != nil {
		return nil, nil, fmt.Errorf("error merging configs: %w", mergeErr)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
