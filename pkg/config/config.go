// Package config handles local configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	mu         sync.RWMutex
	globalCfg  *Config
	configPath string
)

// DefaultAPIURL is used until the user points the tool elsewhere.
const DefaultAPIURL = "http://localhost:8000"

// Config represents the CLI configuration.
type Config struct {
	APIUrl         string            `json:"api_url"`
	OutputFormat   string            `json:"output_format,omitempty"`
	CustomSettings map[string]string `json:"custom,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		APIUrl:         DefaultAPIURL,
		OutputFormat:   "auto",
		CustomSettings: make(map[string]string),
	}
}

// Dir returns the configuration directory, honoring AGT_CONFIG_DIR.
func Dir() (string, error) {
	if dir := os.Getenv("AGT_CONFIG_DIR"); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", fmt.Errorf("create config directory: %w", err)
		}
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}

	agtDir := filepath.Join(homeDir, ".agt")
	if err := os.MkdirAll(agtDir, 0700); err != nil {
		return "", fmt.Errorf("create .agt directory: %w", err)
	}

	return agtDir, nil
}

// Load reads the configuration from disk, creating defaults if needed.
// A .env.local in the working directory is applied first, matching the
// backend's own dotenv convention; AGT_API_URL overrides the file value.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg != nil {
		return globalCfg, nil
	}

	// Missing .env.local is the normal case.
	_ = godotenv.Load(".env.local")

	agtDir, err := Dir()
	if err != nil {
		return nil, err
	}

	configPath = filepath.Join(agtDir, "config.json")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		globalCfg = Default()
		applyEnv(globalCfg)
		if err := save(globalCfg); err != nil {
			return nil, fmt.Errorf("save default config: %w", err)
		}
		return globalCfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.CustomSettings == nil {
		cfg.CustomSettings = make(map[string]string)
	}

	globalCfg = &cfg
	applyEnv(globalCfg)

	return globalCfg, nil
}

func applyEnv(cfg *Config) {
	if apiURL := os.Getenv("AGT_API_URL"); apiURL != "" {
		cfg.APIUrl = apiURL
	}
}

// save writes the config to disk.
func save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Get retrieves a config value by key.
func Get(key string) (string, error) {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		return "", fmt.Errorf("config not loaded")
	}

	switch key {
	case "api_url":
		return globalCfg.APIUrl, nil
	case "output.format":
		return globalCfg.OutputFormat, nil
	default:
		if val, ok := globalCfg.CustomSettings[key]; ok {
			return val, nil
		}
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set updates a config value by key and persists it.
func Set(key, value string) error {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg == nil {
		return fmt.Errorf("config not loaded")
	}

	switch key {
	case "api_url":
		globalCfg.APIUrl = value
	case "output.format":
		globalCfg.OutputFormat = value
	default:
		globalCfg.CustomSettings[key] = value
	}

	return save(globalCfg)
}

// List returns all config key-value pairs.
func List() (map[string]string, error) {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}

	result := make(map[string]string)
	result["api_url"] = globalCfg.APIUrl
	result["output.format"] = globalCfg.OutputFormat

	for k, v := range globalCfg.CustomSettings {
		result[k] = v
	}

	return result, nil
}

// GetAPIUrl returns the configured API base URL.
func GetAPIUrl() string {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		return DefaultAPIURL
	}

	return globalCfg.APIUrl
}

// Reset drops the in-memory config so the next Load rereads disk and
// environment. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalCfg = nil
	configPath = ""
}
