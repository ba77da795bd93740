package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points every config-related env var at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tempDir, "cache"))
	t.Setenv("TERMLLO_CONFIG", "")
	t.Setenv("TERMLLO_API_KEY", "")
	t.Setenv("TERMLLO_TOKEN", "")
	t.Setenv("TERMLLO_THEME_FILE", "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configDir := filepath.Join(dir, "termllo")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddCard != "n" {
		t.Errorf("Default AddCard key = %s, want n", defaults.AddCard)
	}
	if defaults.MoveCardDown != "J" {
		t.Errorf("Default MoveCardDown key = %s, want J", defaults.MoveCardDown)
	}
	if defaults.SwitchBoard != "b" {
		t.Errorf("Default SwitchBoard key = %s, want b", defaults.SwitchBoard)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Trello.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.Trello.BaseURL, DefaultBaseURL)
	}
	if cfg.Sync.MoveDebounce != DefaultMoveDebounce {
		t.Errorf("MoveDebounce = %v, want %v", cfg.Sync.MoveDebounce, DefaultMoveDebounce)
	}
	wantCache := filepath.Join(tempDir, "cache", "termllo", "snapshots.db")
	if cfg.Cache.Path != wantCache {
		t.Errorf("Cache.Path = %s, want %s", cfg.Cache.Path, wantCache)
	}
	if err := cfg.Validate(); err != ErrMissingCredentials {
		t.Errorf("Validate() = %v, want ErrMissingCredentials", err)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `trello:
  api_key: "k1"
  token: "t1"
cache:
  max_age: 2h
sync:
  move_debounce: 150ms
key_mappings:
  quit: "x"
  add_card: "a"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Trello.APIKey != "k1" || cfg.Trello.Token != "t1" {
		t.Errorf("credentials = %q/%q, want k1/t1", cfg.Trello.APIKey, cfg.Trello.Token)
	}
	if cfg.Cache.MaxAge != 2*time.Hour {
		t.Errorf("Cache.MaxAge = %v, want 2h", cfg.Cache.MaxAge)
	}
	if cfg.Sync.MoveDebounce != 150*time.Millisecond {
		t.Errorf("MoveDebounce = %v, want 150ms", cfg.Sync.MoveDebounce)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddCard != "a" {
		t.Errorf("Loaded AddCard key = %s, want a", cfg.KeyMappings.AddCard)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditCard != "e" {
		t.Errorf("Loaded EditCard key = %s, want e (default)", cfg.KeyMappings.EditCard)
	}
	if cfg.Sync.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("RequestTimeout = %v, want default", cfg.Sync.RequestTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `trello:
  api_key: "file-key"
  token: "file-token"
`)
	t.Setenv("TERMLLO_API_KEY", "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Trello.APIKey != "env-key" {
		t.Errorf("APIKey = %s, want env-key", cfg.Trello.APIKey)
	}
	if cfg.Trello.Token != "file-token" {
		t.Errorf("Token = %s, want file-token", cfg.Trello.Token)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	tempDir := isolate(t)
	explicit := filepath.Join(tempDir, "elsewhere.yaml")
	if err := os.WriteFile(explicit, []byte("key_mappings:\n  quit: \"z\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("TERMLLO_CONFIG", explicit)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.KeyMappings.Quit != "z" {
		t.Errorf("Quit = %s, want z", cfg.KeyMappings.Quit)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "trello: [not, a, map")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with invalid YAML succeeded, want error")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := isolate(t)

	cfg := &Config{
		Trello: TrelloConfig{APIKey: "k", Token: "t"},
		KeyMappings: KeyMappings{
			Quit:    "x",
			AddCard: "a",
		},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "termllo", "config.yaml")
	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Config file not created at %s: %v", configPath, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config mode = %v, want 0600", info.Mode().Perm())
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.Trello.Token != "t" {
		t.Errorf("Reloaded Token = %s, want t", cfg2.Trello.Token)
	}
	if cfg2.Sync.MoveDebounce != cfg.Sync.MoveDebounce {
		t.Errorf("Reloaded MoveDebounce = %v, want %v", cfg2.Sync.MoveDebounce, cfg.Sync.MoveDebounce)
	}
}
