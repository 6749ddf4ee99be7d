// Package config loads the weft.json project file.
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
)

// Config is the project configuration, read from weft.json at the
// project root. Missing fields fall back to defaults.
type Config struct {
	Name   string       `json:"name"`
	Server ServerConfig `json:"server"`
	Build  BuildConfig  `json:"build"`
	Deploy DeployConfig `json:"deploy"`
}

// ServerConfig configures the dev server.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// BuildConfig configures the static export.
type BuildConfig struct {
	OutDir    string   `json:"outDir"`
	WatchDirs []string `json:"watchDirs"`
	Ignore    []string `json:"ignore"`
}

// DeployConfig configures publishing to S3.
type DeployConfig struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix"`
	Region string `json:"region"`
}

// Default returns the configuration used when no weft.json exists.
func Default() *Config {
	return &Config{
		Name: "weft-site",
		Server: ServerConfig{
			Host: "localhost",
			Port: 5173,
		},
		Build: BuildConfig{
			OutDir:    "dist",
			WatchDirs: []string{"internal", "pkg"},
			Ignore:    []string{".git", "node_modules", "dist"},
		},
		Deploy: DeployConfig{
			Region: "us-east-1",
		},
	}
}

// Load reads path and overlays it on the defaults. A missing file is
// not an error; malformed JSON is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}
	if c.Build.OutDir == "" {
		return fmt.Errorf("config: build.outDir must not be empty")
	}
	return nil
}

// Addr returns the dev server listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
