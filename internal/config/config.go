// FILE: internal/config/config.go
package config

import (
	"fmt"

	"breakthrough/internal/core"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"BREAKTHROUGH_LOG_LEVEL" env-default:"info"`
	LogFormat string  `yaml:"log-format" env:"BREAKTHROUGH_LOG_FORMAT" env-default:"auto"` // auto, console or json
	API       API     `yaml:"api"`
	Storage   Storage `yaml:"storage"`
	PID       PID     `yaml:"pid"`
	Dev       bool    `yaml:"dev" env:"BREAKTHROUGH_DEV" env-default:"false"`
	Stalemate string  `yaml:"stalemate" env:"BREAKTHROUGH_STALEMATE" env-default:"mover"`
}

type API struct {
	Host string `yaml:"host" env:"BREAKTHROUGH_API_HOST" env-default:"localhost"`
	Port int    `yaml:"port" env:"BREAKTHROUGH_API_PORT" env-default:"8080"`
}

type Storage struct {
	Path string `yaml:"path" env:"BREAKTHROUGH_STORAGE_PATH"` // empty disables persistence
}

type PID struct {
	Path string `yaml:"path" env:"BREAKTHROUGH_PID"`
	Lock bool   `yaml:"lock" env:"BREAKTHROUGH_PID_LOCK" env-default:"false"`
}

// Load reads configuration from path, or from the environment alone when
// path is empty. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	if _, err := core.ParseStalemateRule(c.Stalemate); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.LogFormat {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("invalid config: log format %q must be auto, console or json", c.LogFormat)
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("invalid config: api port %d out of range", c.API.Port)
	}
	if c.PID.Lock && c.PID.Path == "" {
		return fmt.Errorf("invalid config: pid lock requires a pid path")
	}
	return nil
}

// StalemateRule returns the configured rule; Validate has already vetted it.
func (c *Config) StalemateRule() core.StalemateRule {
	rule, _ := core.ParseStalemateRule(c.Stalemate)
	return rule
}

func (c *API) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
