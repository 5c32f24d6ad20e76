package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronsmc/office-wishlist-agent/internal/store"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(Dir(home), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(Dir(home), "config.yaml"), []byte(body), 0644))
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home, "")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".availability", "data"), cfg.DataDir)
	assert.Equal(t, DriverFile, cfg.StoreDriver)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 24, cfg.AttachWindow)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	assert.Equal(t, filepath.Join(home, ".availability", "config.yaml"), cfg.Path())
}

func TestLoadFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
store:
  driver: redis
  redis:
    addr: cache:6380
    db: 2
log:
  level: debug
parser:
  attach_window: 40
`)

	cfg, err := Load(home, "")

	require.NoError(t, err)
	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "availability:", cfg.Redis.Prefix)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 40, cfg.AttachWindow)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "parser:\n  attach_window: 40\n")
	t.Setenv("AVAILABILITY_PARSER_ATTACH_WINDOW", "12")
	t.Setenv("AVAILABILITY_DATA_DIR", "/srv/availability")

	cfg, err := Load(home, "")

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.AttachWindow)
	assert.Equal(t, "/srv/availability", cfg.DataDir)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "store:\n  driver: postgres\n"},
		{"zero window", "parser:\n  attach_window: 0\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad yaml", "store: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, tt.body)
			_, err := Load(home, "")
			assert.Error(t, err)
		})
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetSet(t *testing.T) {
	home := t.TempDir()
	cfg, err := Load(home, "")
	require.NoError(t, err)

	require.NoError(t, cfg.Set(KeyAttachWindow, "32"))
	assert.Equal(t, 32, cfg.AttachWindow)

	got, err := cfg.Get(KeyAttachWindow)
	require.NoError(t, err)
	assert.Equal(t, "32", got)

	reloaded, err := Load(home, "")
	require.NoError(t, err)
	assert.Equal(t, 32, reloaded.AttachWindow)
}

func TestSetWritesOnlyFileSettings(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "log:\n  level: info\n")
	t.Setenv("AVAILABILITY_STORE_REDIS_PASSWORD", "hunter2")
	t.Setenv("AVAILABILITY_STORE_DRIVER", "redis")

	cfg, err := Load(home, "")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.Redis.Password)

	require.NoError(t, cfg.Set(KeyAttachWindow, "32"))

	data, err := os.ReadFile(cfg.Path())
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "attach_window: 32")
	assert.Contains(t, body, "level: info")
	assert.NotContains(t, body, "hunter2")
	assert.NotContains(t, body, "driver")
	assert.NotContains(t, body, "data_dir")

	require.NoError(t, cfg.Set(KeyRedisPassword, "s3cret"))
	data, err = os.ReadFile(cfg.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "password: s3cret")
}

func TestSetRejects(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)

	assert.Error(t, cfg.Set("nope", "1"))
	assert.Error(t, cfg.Set(KeyAttachWindow, "wide"))
	assert.Error(t, cfg.Set(KeyStoreDriver, "postgres"))
	assert.Equal(t, DriverFile, cfg.StoreDriver)

	_, err = cfg.Get("nope")
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, KeyStoreDriver)
	assert.Len(t, keys, 8)
	assert.IsIncreasing(t, keys)
}

func TestOpenFileStore(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)

	s, closeFn, err := cfg.OpenStore(context.Background())
	require.NoError(t, err)
	defer closeFn()

	fs, ok := s.(*store.FileStore)
	require.True(t, ok)
	assert.Equal(t, cfg.DataDir, fs.Root())
}
