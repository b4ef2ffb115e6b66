// internal/config/config_test.go
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Transport)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8011, cfg.Port)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, "0.0.0.0:8011", cfg.Addr())
}

func TestLoad_FileEnvAndFlagPrecedence(t *testing.T) {
	path := writeConfig(t, "port: 9000\nhost: 127.0.0.1\nlog_level: debug\nformat: yaml\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "yaml", cfg.Format)

	t.Setenv("MEAL_BALANCE_PORT", "9100")
	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	flags.String("db-path", "", "")
	require.NoError(t, flags.Parse([]string{"--port", "9200", "--db-path", "/tmp/x.db"}))

	cfg, err = Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "format: xml\n")
	_, err := Load(path, nil)
	assert.ErrorContains(t, err, "config error")

	path = writeConfig(t, "port: 70000\n")
	_, err = Load(path, nil)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
