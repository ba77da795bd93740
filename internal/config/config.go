package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingCredentials is returned by Validate when the API key or token is unset
var ErrMissingCredentials = errors.New("trello api_key and token must be set (config file or TERMLLO_API_KEY/TERMLLO_TOKEN)")

const (
	// DefaultBaseURL is the Trello REST API root
	DefaultBaseURL = "https://api.trello.com/1"

	// DefaultCacheMaxAge is how long a snapshot stays usable
	DefaultCacheMaxAge = 24 * time.Hour

	// DefaultMoveDebounce is the idle window before a card move is sent
	DefaultMoveDebounce = 400 * time.Millisecond

	// DefaultRequestTimeout bounds a single remote call
	DefaultRequestTimeout = 10 * time.Second
)

// Config represents the application configuration
type Config struct {
	Trello      TrelloConfig `yaml:"trello"`
	Cache       CacheConfig  `yaml:"cache"`
	Sync        SyncConfig   `yaml:"sync"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
}

// TrelloConfig holds the remote service credentials
type TrelloConfig struct {
	APIKey  string `yaml:"api_key"`
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
}

// CacheConfig controls the on-disk snapshot cache
type CacheConfig struct {
	Disabled bool          `yaml:"disabled"`
	Path     string        `yaml:"path"`
	MaxAge   time.Duration `yaml:"max_age"`
}

// SyncConfig controls how mutations reach the remote service
type SyncConfig struct {
	MoveDebounce   time.Duration `yaml:"move_debounce"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Default returns a config populated entirely with defaults
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TERMLLO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TERMLLO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnv applies credential overrides from the environment
func loadEnv(config *Config) {
	if key := os.Getenv("TERMLLO_API_KEY"); key != "" {
		config.Trello.APIKey = key
	}
	if token := os.Getenv("TERMLLO_TOKEN"); token != "" {
		config.Trello.Token = token
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		loadEnv(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path.
// A missing file yields the defaults.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		loadEnv(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)
	loadEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Credentials live in this file
	return os.WriteFile(configPath, data, 0o600)
}

// Validate checks the settings needed to talk to the remote service
func (c *Config) Validate() error {
	if c.Trello.APIKey == "" || c.Trello.Token == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Path returns the path to the config file.
// TERMLLO_CONFIG wins over the XDG location.
func Path() (string, error) {
	if explicit := os.Getenv("TERMLLO_CONFIG"); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "termllo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "termllo", "config.yaml"), nil
}

// defaultCachePath returns the snapshot database location
func defaultCachePath() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "termllo", "snapshots.db")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".cache", "termllo", "snapshots.db")
	}
	return filepath.Join(os.TempDir(), "termllo-snapshots.db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Trello.BaseURL == "" {
		c.Trello.BaseURL = DefaultBaseURL
	}
	if c.Cache.Path == "" {
		c.Cache.Path = defaultCachePath()
	}
	if c.Cache.MaxAge <= 0 {
		c.Cache.MaxAge = DefaultCacheMaxAge
	}
	if c.Sync.MoveDebounce <= 0 {
		c.Sync.MoveDebounce = DefaultMoveDebounce
	}
	if c.Sync.RequestTimeout <= 0 {
		c.Sync.RequestTimeout = DefaultRequestTimeout
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
