package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
log_level: debug
db_conn_str: "postgres://file"
db_max_open: 3
db_timeout: 2s
formatter:
  go: [["gofmt", "-w"]]
domains:
  pay_type: ["fixed", "hourly"]
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"EZPZ_CONFIG", "EZPZ_LOG_LEVEL", "EZPZ_LOG_FILE", "EZPZ_DB_CONN_STR", "EZPZ_DB_MAX_OPEN", "EZPZ_DB_MAX_IDLE", "EZPZ_DB_TIMEOUT", "EZPZ_METRICS_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayers(t *testing.T) {
	clearEnv(t)
	path := writeSample(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path, "--db-max-idle", "7"}))

	t.Setenv("EZPZ_DB_CONN_STR", "postgres://env")

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://env", cfg.DBConnStr)
	assert.Equal(t, 3, cfg.DBMaxOpen)
	assert.Equal(t, 7, cfg.DBMaxIdle)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
	assert.Equal(t, [][]string{{"gofmt", "-w"}}, cfg.Formatter["go"])
	assert.Equal(t, []string{"fixed", "hourly"}, cfg.Domains["pay_type"])
}

func TestLoadPoolFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("EZPZ_DB_MAX_IDLE", "2")
	t.Setenv("EZPZ_DB_TIMEOUT", "750ms")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DBMaxIdle)
	assert.Equal(t, 750*time.Millisecond, cfg.DBTimeout)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--db-timeout", "3s"}))
	cfg, err = Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.DBTimeout)
}

func TestFlagsBeatEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("EZPZ_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "error"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}))
	_, err := Load(fs)
	assert.Error(t, err)

	t.Setenv("EZPZ_DB_MAX_OPEN", "many")
	_, err = Load(nil)
	assert.ErrorContains(t, err, "EZPZ_DB_MAX_OPEN")

	t.Setenv("EZPZ_DB_MAX_OPEN", "")
	t.Setenv("EZPZ_DB_MAX_IDLE", "few")
	_, err = Load(nil)
	assert.ErrorContains(t, err, "EZPZ_DB_MAX_IDLE")

	t.Setenv("EZPZ_DB_MAX_IDLE", "")
	t.Setenv("EZPZ_DB_TIMEOUT", "soon")
	_, err = Load(nil)
	assert.ErrorContains(t, err, "EZPZ_DB_TIMEOUT")
}
