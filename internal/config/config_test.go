package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every REPOCANVAS_ env var that Load() reads.
var allConfigKeys = []string{
	"REPOCANVAS_ENV_FILE",
	"REPOCANVAS_LISTEN_ADDR",
	"REPOCANVAS_DB_PATH",
	"REPOCANVAS_GITHUB_TOKEN",
	"REPOCANVAS_GITHUB_API_URL",
	"REPOCANVAS_SESSION_TTL",
	"REPOCANVAS_RECENT_LOOKUPS",
}

// isolateConfigEnv saves and unsets all REPOCANVAS_ env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test. The env file points at
// a path that does not exist unless a test overrides it.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
	t.Setenv("REPOCANVAS_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("REPOCANVAS_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("REPOCANVAS_DB_PATH", "/tmp/test.db")
	t.Setenv("REPOCANVAS_GITHUB_TOKEN", "ghp_test123")
	t.Setenv("REPOCANVAS_GITHUB_API_URL", "https://ghe.example.com/api/v3/")
	t.Setenv("REPOCANVAS_SESSION_TTL", "10m")
	t.Setenv("REPOCANVAS_RECENT_LOOKUPS", "3")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "ghp_test123", cfg.GitHubToken)
	assert.True(t, cfg.HasGitHubToken())
	assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.GitHubAPIURL)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.RecentLookups)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "repocanvas.db", cfg.DBPath)
	assert.Equal(t, "", cfg.GitHubToken)
	assert.False(t, cfg.HasGitHubToken())
	assert.Equal(t, "", cfg.GitHubAPIURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 8, cfg.RecentLookups)
}

func TestLoad_InvalidSessionTTL(t *testing.T) {
	for _, v := range []string{"not-a-duration", "-5m"} {
		t.Run(v, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("REPOCANVAS_SESSION_TTL", v)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "REPOCANVAS_SESSION_TTL")
		})
	}
}

func TestLoad_InvalidRecentLookups(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("REPOCANVAS_RECENT_LOOKUPS", "many")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPOCANVAS_RECENT_LOOKUPS")
}

func TestLoad_EnvFile(t *testing.T) {
	isolateConfigEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("REPOCANVAS_DB_PATH=/data/from-file.db\nREPOCANVAS_LISTEN_ADDR=file:1\n"), 0o600))
	t.Setenv("REPOCANVAS_ENV_FILE", path)
	t.Setenv("REPOCANVAS_LISTEN_ADDR", "env:2")

	// godotenv sets variables it loads; make sure they are removed afterwards.
	t.Cleanup(func() { os.Unsetenv("REPOCANVAS_DB_PATH") })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/data/from-file.db", cfg.DBPath)
	assert.Equal(t, "env:2", cfg.ListenAddr, "environment wins over the env file")
}
