package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultDSN matches the local development setup the schema was written
// against.
const defaultDSN = "host=localhost user=postgres password=postgres sslmode=disable"

// defaultConfigFile is consulted when --config is not given.
const defaultConfigFile = "todo.yaml"

// Config is the YAML config file shape.
type Config struct {
	DSN string `yaml:"dsn"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveDSN picks the connection string, in order of precedence: the --dsn
// flag, the DATABASE_URL environment variable (a .env file is loaded by
// main), a config file (--config, or todo.yaml if present), and finally the
// local development default.
func ResolveDSN(opts *RootOptions) (string, error) {
	if opts.DSN != "" {
		return opts.DSN, nil
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn, nil
	}

	path := opts.ConfigFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); errors.Is(err, os.ErrNotExist) {
			return defaultDSN, nil
		}
		path = defaultConfigFile
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return "", err
	}
	if cfg.DSN == "" {
		return "", fmt.Errorf("config %s has no dsn", path)
	}
	return cfg.DSN, nil
}
