package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dispatch/cmd"
	"dispatch/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"STORAGE_DRIVER", "REDIS_ADDR", "RANK_CACHE_TTL", "RANK_REPORT_SCHEDULE", "RANK_REPORT_TOP",
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t, configKeys...)

	cfg, err := cmd.LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 30*time.Second, cfg.RankCacheTTL)
	assert.Equal(t, jobs.DefaultRankReportSchedule, cfg.RankReportSchedule)
	assert.Equal(t, jobs.DefaultRankReportTop, cfg.RankReportTop)
	assert.False(t, cfg.Seed)
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "dispatch")
	t.Setenv("RANK_CACHE_TTL", "1m")
	t.Setenv("RANK_REPORT_TOP", "5")

	cfg, err := cmd.LoadConfig([]string{"--http-port", "7070", "--seed"})
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, cmd.StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, time.Minute, cfg.RankCacheTTL)
	assert.Equal(t, 5, cfg.RankReportTop)
	assert.True(t, cfg.Seed)
	assert.Equal(t, "host=db port=5432 user= password= dbname=dispatch sslmode=disable", cfg.Connection().DSN())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t, configKeys...)

	path := filepath.Join(t.TempDir(), "dispatch.env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=6060\nREDIS_ADDR=localhost:6379\n"), 0o600))

	cfg, err := cmd.LoadConfig([]string{"--env-file", path})
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)

	_, err = cmd.LoadConfig([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")})
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port", map[string]string{"HTTP_PORT": "http"}},
		{"storage driver", map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{"postgres without host", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"ttl", map[string]string{"RANK_CACHE_TTL": "soon"}},
		{"top", map[string]string{"RANK_REPORT_TOP": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t, configKeys...)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := cmd.LoadConfig(nil)
			assert.Error(t, err)
		})
	}
}
