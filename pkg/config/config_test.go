package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func setupTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("AGT_CONFIG_DIR", dir)
	t.Setenv("AGT_API_URL", "")

	Reset()
	t.Cleanup(Reset)

	return dir
}

func TestLoadCreatesDefaults(t *testing.T) {
	dir := setupTestConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIUrl != DefaultAPIURL {
		t.Errorf("APIUrl = %q, want %q", cfg.APIUrl, DefaultAPIURL)
	}
	if cfg.OutputFormat != "auto" {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, "auto")
	}

	// Default config is persisted on first load.
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	var onDisk Config
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("config file not valid json: %v", err)
	}
	if onDisk.APIUrl != DefaultAPIURL {
		t.Errorf("on-disk APIUrl = %q, want %q", onDisk.APIUrl, DefaultAPIURL)
	}
}

func TestLoadReadsExistingFile(t *testing.T) {
	dir := setupTestConfig(t)

	existing := Config{APIUrl: "https://assets.example.com", OutputFormat: "json"}
	data, _ := json.Marshal(existing)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIUrl != "https://assets.example.com" {
		t.Errorf("APIUrl = %q, want file value", cfg.APIUrl)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want file value", cfg.OutputFormat)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := setupTestConfig(t)

	existing := Config{APIUrl: "https://file.example.com"}
	data, _ := json.Marshal(existing)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("AGT_API_URL", "https://env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIUrl != "https://env.example.com" {
		t.Errorf("APIUrl = %q, env must win over the file", cfg.APIUrl)
	}
}

func TestGetSet(t *testing.T) {
	setupTestConfig(t)

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := Set("api_url", "https://set.example.com"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := Get("api_url")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "https://set.example.com" {
		t.Errorf("Get(api_url) = %q", got)
	}

	if GetAPIUrl() != "https://set.example.com" {
		t.Errorf("GetAPIUrl() = %q", GetAPIUrl())
	}

	// Custom keys round-trip through the custom settings map.
	if err := Set("editor", "vim"); err != nil {
		t.Fatalf("Set(editor) error = %v", err)
	}
	got, err = Get("editor")
	if err != nil {
		t.Fatalf("Get(editor) error = %v", err)
	}
	if got != "vim" {
		t.Errorf("Get(editor) = %q", got)
	}

	if _, err := Get("nope"); err == nil {
		t.Error("Get(nope) should fail for unknown key")
	}
}

func TestSetPersists(t *testing.T) {
	setupTestConfig(t)

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := Set("output.format", "json"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q after reload, want %q", cfg.OutputFormat, "json")
	}
}

func TestList(t *testing.T) {
	setupTestConfig(t)

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	all, err := List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if all["api_url"] != DefaultAPIURL {
		t.Errorf("List()[api_url] = %q", all["api_url"])
	}
	if _, ok := all["output.format"]; !ok {
		t.Error("List() missing output.format")
	}
}

func TestGetAPIUrlBeforeLoad(t *testing.T) {
	setupTestConfig(t)

	if got := GetAPIUrl(); got != DefaultAPIURL {
		t.Errorf("GetAPIUrl() = %q before load, want default", got)
	}
}
