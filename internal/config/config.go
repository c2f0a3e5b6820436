// Package config loads seqstat settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aria-lang/seqstat-go/internal/parser"
)

// EnvPath names the environment variable the server reads its config path from.
const EnvPath = "SEQSTAT_CONFIG"

// Config holds the settings shared by the CLI and the server.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	MinLength int    `yaml:"min_length"`
	// MaxLength 0 means unbounded.
	MaxLength int    `yaml:"max_length"`
	Output    string `yaml:"output"`
	Server    Server `yaml:"server"`
}

// Server holds HTTP server settings.
type Server struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Output:   "output.txt",
		Server: Server{
			Host:         "localhost",
			Port:         8080,
			MaxBodyBytes: 64 << 20,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Filter().Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("config %s: invalid server port %d", path, cfg.Server.Port)
	}

	return cfg, nil
}

// Filter returns the length filter described by the config.
func (c *Config) Filter() parser.Filter {
	return parser.Filter{MinLength: c.MinLength, MaxLength: c.MaxLength}
}

// Addr returns the server listen address.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
