package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("REPSHEET_CONFIG_DIR", dir)
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("TURSO_AUTH_TOKEN", "")
	t.Setenv("REPSHEET_STORAGE_BACKEND", "")
	t.Setenv("REPSHEET_STORAGE_PATH", "")
	t.Setenv("REPSHEET_LOG_LEVEL", "")
	t.Setenv("DEV_MODE", "")
	// godotenv looks in the working directory.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, dir, cfg.Storage.Path)
	assert.Equal(t, DefaultSlot, cfg.Storage.Slot)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_File(t *testing.T) {
	dir := isolate(t)
	data := `
[storage]
backend = "sqlite"
path = "/tmp/reps.db"

[log]
level = "debug"

[display]
timezone = "UTC"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/reps.db", cfg.Storage.Path)
	assert.Equal(t, DefaultSlot, cfg.Storage.Slot)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "UTC", cfg.Display.Timezone)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := isolate(t)

	t.Run("malformed toml", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[storage\n"), 0644))
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[storage]\nbackend = \"floppy\"\n"), 0644))
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "floppy")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("TURSO_DATABASE_URL switches to libsql", func(t *testing.T) {
		isolate(t)
		t.Setenv("TURSO_DATABASE_URL", "libsql://reps.turso.io")
		t.Setenv("TURSO_AUTH_TOKEN", "tok")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, BackendLibSQL, cfg.Storage.Backend)
		assert.Equal(t, "libsql://reps.turso.io", cfg.Storage.URL)
		assert.Equal(t, "tok", cfg.Storage.AuthToken)
	})

	t.Run("DEV_MODE uses a local sqlite file", func(t *testing.T) {
		isolate(t)
		t.Setenv("DEV_MODE", "true")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
		assert.Equal(t, "./local.db", cfg.Storage.Path)
	})

	t.Run("explicit backend and level", func(t *testing.T) {
		isolate(t)
		t.Setenv("REPSHEET_STORAGE_BACKEND", "sqlite")
		t.Setenv("REPSHEET_STORAGE_PATH", "/data/reps.db")
		t.Setenv("REPSHEET_LOG_LEVEL", "warn")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
		assert.Equal(t, "/data/reps.db", cfg.Storage.Path)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("libsql without url is rejected", func(t *testing.T) {
		isolate(t)
		t.Setenv("REPSHEET_STORAGE_BACKEND", "libsql")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestWriteDefault(t *testing.T) {
	dir := isolate(t)

	written, err := WriteDefault()
	require.NoError(t, err)
	assert.True(t, written)
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	written, err = WriteDefault()
	require.NoError(t, err)
	assert.False(t, written)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
}
