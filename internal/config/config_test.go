package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saeidalz13/battleship-setup/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STAGE", "PORT", "PSQL_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, config.StageDev, cfg.Stage)
	assert.False(t, cfg.ServeViewer())
	assert.False(t, cfg.AnalyticsEnabled())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "STAGE=dev\nPORT=9191\nPSQL_URL=postgres://localhost:5432/battleship\n")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
	assert.True(t, cfg.ServeViewer())
	assert.True(t, cfg.AnalyticsEnabled())
}

func TestLoadProdSkipsEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("STAGE", "prod")
	path := writeEnvFile(t, "PORT=9191\n")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, config.StageProd, cfg.Stage)
	assert.Zero(t, cfg.Port)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		stage string
		port  string
	}{
		{"invalid stage", "staging", ""},
		{"port not a number", "dev", "abc"},
		{"port out of range", "dev", "70000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("STAGE", test.stage)
			if test.port != "" {
				t.Setenv("PORT", test.port)
			}

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
