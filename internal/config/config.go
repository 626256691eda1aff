package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendLibSQL = "libsql"

	DefaultSlot = "workoutRoutines"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	Display DisplayConfig `toml:"display"`
}

type StorageConfig struct {
	Backend   string `toml:"backend"`    // file, sqlite or libsql.
	Path      string `toml:"path"`       // Directory for file, database path for sqlite.
	Slot      string `toml:"slot"`       // Key the routine collection lives under.
	URL       string `toml:"url"`        // libsql only.
	AuthToken string `toml:"auth_token"` // libsql only.
}

type LogConfig struct {
	Level string `toml:"level"`
}

type DisplayConfig struct {
	Timezone string `toml:"timezone"`
}

// Returns the directory holding config.toml, the file backend and the
// current session file.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("REPSHEET_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "repsheet"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Default(dir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    dir,
			Slot:    DefaultSlot,
		},
		Log:     LogConfig{Level: "info"},
		Display: DisplayConfig{Timezone: "Local"},
	}
}

// Reads the configuration from the config file. A missing file is not an
// error, every key has a default.
func LoadConfig() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	// Credentials for a remote database usually live in .env, like before.
	_ = godotenv.Load()

	cfg := Default(dir)
	path := filepath.Join(dir, "config.toml")
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		c.Storage.URL = v
		if c.Storage.Backend == "" || c.Storage.Backend == BackendFile {
			c.Storage.Backend = BackendLibSQL
		}
	}
	if v := os.Getenv("TURSO_AUTH_TOKEN"); v != "" {
		c.Storage.AuthToken = v
	}
	if v := os.Getenv("REPSHEET_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("REPSHEET_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("REPSHEET_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		c.Storage.Backend = BackendSQLite
		c.Storage.Path = "./local.db"
	}

	if c.Storage.Slot == "" {
		c.Storage.Slot = DefaultSlot
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s backend", c.Storage.Backend)
		}
	case BackendLibSQL:
		if c.Storage.URL == "" {
			return errors.New("storage.url (or TURSO_DATABASE_URL) is required for the libsql backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// WriteDefault creates config.toml with the defaults unless one already exists.
// It reports whether a file was written.
func WriteDefault() (bool, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(Default(dir)); err != nil {
		return false, err
	}
	return true, nil
}
