package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porra/internal/constants"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORRA_CONFIG", "PORRA_API_URL", "PORRA_API_TIMEOUT", "PORRA_DB_PATH", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	// keep a stray .env in the working directory out of the picture
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, constants.APITimeout, cfg.APITimeout)
	assert.Equal(t, constants.DefaultDBPath, cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORRA_API_URL", "https://api.porra.test/v1/")
	t.Setenv("PORRA_API_TIMEOUT", "3s")
	t.Setenv("PORRA_DB_PATH", "/tmp/p.db")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "https://api.porra.test/v1", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, "/tmp/p.db", cfg.DBPath)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "porra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://file.test/api\n  timeout: 7s\ndb_path: file.db\nlog_level: debug\n"), 0o600))
	t.Setenv("PORRA_CONFIG", path)
	t.Setenv("PORRA_DB_PATH", "env.db")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "https://file.test/api", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.APITimeout)
	assert.Equal(t, "env.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORRA_API_TIMEOUT", "soon")
		_, err := Load(zerolog.Nop())
		assert.Error(t, err)
	})

	t.Run("url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORRA_API_URL", "localhost:3001")
		_, err := Load(zerolog.Nop())
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORRA_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load(zerolog.Nop())
		assert.Error(t, err)
	})
}
