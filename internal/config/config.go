// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// bubbleos.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.bubbleos/config.toml
//   - ~/.bubbleos/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/bubbleos-lite/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete bubbleos configuration.
type Config struct {
	// General settings
	General GeneralConfig `toml:"general" json:"general"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// History configuration
	History HistoryConfig `toml:"history" json:"history"`
}

// GeneralConfig contains shell-wide behavior settings.
type GeneralConfig struct {
	// Prompt is the string printed before each line read.
	Prompt string `toml:"prompt" json:"prompt"`
	// Silent suppresses per-command success messages globally,
	// as if every command were run with its trailing -s flag.
	Silent bool `toml:"silent" json:"silent"`
}

// UIConfig contains terminal presentation settings.
type UIConfig struct {
	// Colors controls ANSI color output: "auto", "always", or "never".
	// "auto" enables colors only when stdout is a terminal, and still
	// honors the NO_COLOR and FORCE_COLOR conventions.
	Colors string `toml:"colors" json:"colors"`
}

// HistoryConfig contains command history settings.
type HistoryConfig struct {
	// PersistInput saves the line-editor input history to
	// ~/.bubbleos/input_history between sessions.
	PersistInput bool `toml:"persist_input" json:"persist_input"`
	// Limit is the maximum number of retained history entries.
	// Oldest entries are dropped past the limit. 0 means unlimited.
	Limit int `toml:"limit" json:"limit"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Prompt: "bubble> ",
			Silent: false,
		},
		UI: UIConfig{
			Colors: "auto",
		},
		History: HistoryConfig{
			PersistInput: true,
			Limit:        500,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the bubbleos configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".bubbleos"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// InputHistoryPath returns the path to the persisted line-editor history.
func InputHistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "input_history"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// BUBBLEOS_CONFIG, when set, names an explicit config file and wins
// outright. Otherwise tries TOML first, then JSON, and falls back to
// defaults. Environment overrides are applied last.
func Load() (*Config, error) {
	if explicit := os.Getenv("BUBBLEOS_CONFIG"); explicit != "" {
		return LoadFromPath(explicit)
	}

	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				cfg.ApplyEnvOverrides()
				if err := cfg.Validate(); err != nil {
					return nil, fmt.Errorf("invalid config: %w", err)
				}
				return cfg, nil
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				cfg.ApplyEnvOverrides()
				if err := cfg.Validate(); err != nil {
					return nil, fmt.Errorf("invalid config: %w", err)
				}
				return cfg, nil
			}
		}
	}

	// Apply environment overrides to defaults
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Return defaults (with any load error for informational purposes)
	return cfg, loadErr
}

// LoadTOML loads configuration from a TOML file. Decoding happens on top
// of whatever cfg already holds, so callers pass Default() and absent keys
// keep their defaults while explicit values, including zero, stick.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file, decoding on top of cfg
// the same way LoadTOML does.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. The file type is inferred from the extension, defaulting
// to TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies BUBBLEOS_* environment variables on top of
// the loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	// BUBBLEOS_PROMPT
	if prompt := os.Getenv("BUBBLEOS_PROMPT"); prompt != "" {
		c.General.Prompt = prompt
	}

	// BUBBLEOS_SILENT
	if silent := os.Getenv("BUBBLEOS_SILENT"); silent != "" {
		c.General.Silent = silent == "1" || strings.ToLower(silent) == "true"
	}

	// BUBBLEOS_COLORS
	if colors := os.Getenv("BUBBLEOS_COLORS"); colors != "" {
		c.UI.Colors = strings.ToLower(colors)
	}

	// BUBBLEOS_HISTORY_LIMIT (0 means unlimited)
	if limit := os.Getenv("BUBBLEOS_HISTORY_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n >= 0 {
			c.History.Limit = n
		}
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration back to the active config file. TOML is
// the preferred format; JSON is used only when config.json is the file
// already in play and no config.toml exists.
func Save(cfg *Config) error {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(tomlPath); statErr == nil {
		return SaveTOML(cfg, tomlPath)
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			return SaveJSON(cfg, jsonPath)
		}
	}

	return SaveTOML(cfg, tomlPath)
}

// SaveTOML saves the configuration to a TOML file.
// Config files are created with 0600 permissions (owner read/write only).
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	// Ensure permissions are correct even if file already existed
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	// Write header comment
	fmt.Fprintln(file, "# bubbleos configuration file")
	fmt.Fprintln(file, "# Generated by bubbleos - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file.
// Uses an atomic write with fsync to prevent data loss on crash.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Validate color mode
	switch c.UI.Colors {
	case "", "auto", "always", "never":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.colors",
			Message: fmt.Sprintf("must be 'auto', 'always', or 'never', got %q", c.UI.Colors),
		})
	}

	// Validate history limit
	if c.History.Limit < 0 {
		errs = append(errs, ValidationError{
			Field:   "history.limit",
			Message: fmt.Sprintf("cannot be negative, got %d", c.History.Limit),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access unless SetGlobal already supplied
// one. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		globalConfigMu.Lock()
		defer globalConfigMu.Unlock()
		if globalConfig != nil {
			// SetGlobal beat the lazy load; keep its instance.
			return
		}
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
