// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for changeset-relay with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The resulting *Config, including its message table, is handed to each
// component at construction time. Nothing in the application looks up
// configuration or messages through package-level state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .changeset-relay.yaml (current directory)
//   - .changeset-relay.yml (current directory)
//   - ~/.changeset-relay/config.yaml
//   - ~/.changeset-relay/config.yml
//
// Environment variables are applied after loading the config file.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(expandPath(configPath), cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".changeset-relay.yaml",
			".changeset-relay.yml",
			filepath.Join(homeDir(), ".changeset-relay", "config.yaml"),
			filepath.Join(homeDir(), ".changeset-relay", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if tool := os.Getenv("CHANGESET_AUTH_TOOL"); tool != "" {
		cfg.Auth.Tool = tool
	}
	if open := os.Getenv("CHANGESET_AUTH_OPEN_COMMAND"); open != "" {
		cfg.Auth.OpenCommand = open
	}
	if path := os.Getenv("CHANGESET_REMOTE_PATH"); path != "" {
		cfg.Remote.Path = path
	}
	if limit := os.Getenv("CHANGESET_DESCRIPTION_LIMIT"); limit != "" {
		if n, err := parsePositiveInt(limit); err == nil {
			cfg.Output.DescriptionLimit = n
		}
	}
}

func homeDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE") // Windows
	}
	return home
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir(), path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// Validate checks that every setting the list command depends on is present.
// It should be called right after loading so that a broken config file is
// reported before the auth tool is spawned.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.Tool) == "" {
		return fmt.Errorf("auth tool cannot be empty")
	}
	if strings.TrimSpace(c.Auth.OpenCommand) == "" {
		return fmt.Errorf("auth open command cannot be empty")
	}
	if !strings.HasPrefix(c.Remote.Path, "/") {
		return fmt.Errorf("remote path must start with '/', got: %q", c.Remote.Path)
	}
	if c.Remote.TableID == "" {
		return fmt.Errorf("remote table id cannot be empty")
	}
	if c.Output.DescriptionLimit <= 0 {
		return fmt.Errorf("description limit must be positive, got: %d", c.Output.DescriptionLimit)
	}
	return nil
}
