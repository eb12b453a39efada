package logger

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/philipp01105/synclog/core"
)

// EnvConfig lists the environment variables understood by ConfigFromEnv
type EnvConfig struct {
	Level   core.Level `env:"SYNCLOG_LEVEL" envDefault:"ALL"`
	Console bool       `env:"SYNCLOG_CONSOLE" envDefault:"true"`
	Files   []string   `env:"SYNCLOG_FILES" envSeparator:","`
}

// LoadEnvConfig parses the SYNCLOG_* environment variables
func LoadEnvConfig() (*EnvConfig, error) {
	var envVars EnvConfig
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	return &envVars, nil
}

// Apply copies the environment settings onto cfg and returns it
func (e *EnvConfig) Apply(cfg *Config) *Config {
	cfg.SetLevel(e.Level).SetConsole(e.Console)
	for _, path := range e.Files {
		if path != "" {
			cfg.AddFile(path)
		}
	}
	return cfg
}

// ConfigFromEnv returns NewConfig() with the SYNCLOG_* environment
// variables applied
func ConfigFromEnv() (*Config, error) {
	envVars, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}
	return envVars.Apply(NewConfig()), nil
}
