package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("json", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{"storage_driver":"memory","sync_delay":"10ms","error_notice_ttl":1000000}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "memory", cfg.StorageDriver)
		assert.Equal(t, 10*time.Millisecond, cfg.SyncDelay)
		assert.Equal(t, time.Millisecond, cfg.ErrorNoticeTTL)
		assert.Equal(t, "primezone.db", cfg.StorageDSN, "absent fields keep defaults")
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yml", "storage_dsn: /tmp/x.db\nlog_backend: slog\nerror_notice_ttl: 3s\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "/tmp/x.db", cfg.StorageDSN)
		assert.Equal(t, "slog", cfg.LogBackend)
		assert.Equal(t, 3*time.Second, cfg.ErrorNoticeTTL)
		assert.Equal(t, 800*time.Millisecond, cfg.SyncDelay)
	})

	t.Run("no file flag leaves config alone", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{StorageDriver: "keep", SyncDelay: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "keep", cfg.StorageDriver)
		assert.Equal(t, 42*time.Second, cfg.SyncDelay)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", path}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
