// Package config handles user configuration for sopchat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/diogo/sopchat/internal/models"
)

// EnvBaseURL is the environment variable that overrides the backend base URL.
const EnvBaseURL = "SOPCHAT_BASE_URL"

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`             // "dark", "light", or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`        // Enable word wrap in table cells
}

// Config represents the user configuration
type Config struct {
	// BaseURL is the backend base URL. The SOPCHAT_BASE_URL environment
	// variable takes precedence; when both are empty the /api fallback is
	// used.
	BaseURL string `json:"base_url"`
	// TopK is the number of document chunks requested per query.
	TopK int `json:"top_k"`
	// Verbose enables debug logging of request timing and status.
	Verbose         bool           `json:"verbose"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:         "",
		TopK:            models.DefaultTopK,
		Verbose:         false,
		CopyToClipboard: false,
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".sopchat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.TopK <= 0 {
		cfg.TopK = models.DefaultTopK
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveBaseURL returns the backend base URL for cfg, applying the
// precedence: environment, config file, /api fallback. A .env file in the
// working directory is honored.
func ResolveBaseURL(cfg Config) string {
	_ = godotenv.Load()

	if url := strings.TrimSpace(os.Getenv(EnvBaseURL)); url != "" {
		return strings.TrimRight(url, "/")
	}
	if url := strings.TrimSpace(cfg.BaseURL); url != "" {
		return strings.TrimRight(url, "/")
	}
	return models.DefaultBaseURL
}
