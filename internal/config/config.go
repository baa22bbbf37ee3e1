// Package config loads the dashboard configuration from YAML with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the dashboard.
type Config struct {
	Data    Data               `yaml:"data"`
	Server  Server             `yaml:"server"`
	Logging Logging            `yaml:"logging"`
	Charts  []models.ChartSlot `yaml:"charts"`
}

// Data locates the input workbook.
type Data struct {
	File  string `yaml:"file"`
	Sheet string `yaml:"sheet"`
	Mode  string `yaml:"mode"`
}

// Server holds network listener configuration.
type Server struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Addr returns the host:port listen address.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Data: Data{
			File:  "data/PowerBI_Dashboard_data.xlsx",
			Sheet: "CP-DF Summary",
			Mode:  string(models.ModeNamedColumns),
		},
		Server: Server{
			Host:  "127.0.0.1",
			Port:  8050,
			Debug: true,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the YAML configuration file at the given path over the defaults
// and then applies environment variable overrides. An empty path skips the
// file; so does a missing file when optional is true.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case optional && errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CPDASH_DATA_FILE"); v != "" {
		cfg.Data.File = v
	}

	if v := os.Getenv("CPDASH_SHEET"); v != "" {
		cfg.Data.Sheet = v
	}

	if v := os.Getenv("CPDASH_MODE"); v != "" {
		cfg.Data.Mode = v
	}

	if v := os.Getenv("CPDASH_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("CPDASH_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CPDASH_PORT: %w", err)
		}
		cfg.Server.Port = port
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return nil
}
