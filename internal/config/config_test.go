package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file overriding a few values
		path := writeConfig(t, `
log-level: debug
game:
  match-point: 5
  seed: 42
ui:
  think-delay: 1s
journal:
  enabled: true
  redis:
    host: redis.local
    port: "6380"
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values win and the rest fall back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 5, conf.Game.MatchPoint)
		assert.Equal(t, int64(42), conf.Game.Seed)
		assert.Equal(t, time.Second, conf.UI.ThinkDelay)
		assert.Equal(t, 200*time.Millisecond, conf.UI.ClickDebounce)
		assert.True(t, conf.Journal.Enabled)
		assert.Equal(t, "redis.local:6380", conf.Journal.Redis.GetRedisAddr())
		assert.Equal(t, "rounds", conf.Journal.ListKey)
		assert.Equal(t, 500*time.Millisecond, conf.Journal.Timeout)
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no config file and a match point in the environment
		t.Setenv("MATCH_POINT", "7")

		// When: the config is loaded from a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults and environment are used
		require.NoError(t, err)
		assert.Equal(t, 7, conf.Game.MatchPoint)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 300*time.Millisecond, conf.UI.ThinkDelay)
		assert.False(t, conf.Journal.Enabled)
		assert.Equal(t, "localhost:6379", conf.Journal.Redis.GetRedisAddr())
		assert.Equal(t, 16, conf.Journal.QueueSize)
	})

	t.Run("Rejects a match point below one", func(t *testing.T) {
		path := writeConfig(t, "game:\n  match-point: -2\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidMatchPoint)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Negative delay", func(t *testing.T) {
		conf := &Config{Game: Game{MatchPoint: 3}, UI: UI{ThinkDelay: -time.Second}}

		require.ErrorIs(t, conf.Validate(), ErrInvalidDuration)
	})

	t.Run("Enabled journal needs a timeout", func(t *testing.T) {
		conf := &Config{Game: Game{MatchPoint: 3}, Journal: Journal{Enabled: true}}

		require.ErrorIs(t, conf.Validate(), ErrInvalidTimeout)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "game:\n  match-point: -1\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
