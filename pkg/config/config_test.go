package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "./uploads", cfg.Storage.UploadDir)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "memory", cfg.EventBus.Driver)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "[onboarding]", cfg.Log.Prefix)
}

func TestLoad_FromEnvFileInParentDir(t *testing.T) {
	root := t.TempDir()
	content := "DATABASE_DRIVER=sqlite\nDATABASE_URL=file:test.db\nSTORAGE_UPLOAD_DIR=/tmp/docs\nREDIS_URL=redis://cache:6379/1\nEVENT_BUS_DRIVER=redis\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.test"), []byte(content), 0o600))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	t.Chdir(nested)
	for _, k := range []string{"DATABASE_DRIVER", "DATABASE_URL", "STORAGE_UPLOAD_DIR", "REDIS_URL", "EVENT_BUS_DRIVER"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "/tmp/docs", cfg.Storage.UploadDir)
	assert.Equal(t, "redis", cfg.EventBus.Driver)
	assert.Equal(t, "redis://cache:6379/1", cfg.EventBus.RedisURL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("CACHE_DRIVER", "none")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "none", cfg.Cache.Driver)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestFindEnvTest_Missing(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := FindEnvTest("definitely-not-here.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****5432", maskValue("postgres://u:p@h:5432"))
}
