package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/synclog/core"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		for _, key := range []string{"SYNCLOG_LEVEL", "SYNCLOG_CONSOLE", "SYNCLOG_FILES"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, core.AllLevel, cfg.Level())
		assert.True(t, cfg.Console())
		assert.Empty(t, cfg.Files())
	})

	t.Run("all variables", func(t *testing.T) {
		t.Setenv("SYNCLOG_LEVEL", "warn")
		t.Setenv("SYNCLOG_CONSOLE", "false")
		t.Setenv("SYNCLOG_FILES", "a.log,b.log,,a.log")

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, core.WarnLevel, cfg.Level())
		assert.False(t, cfg.Console())
		assert.Equal(t, []string{"a.log", "b.log", "a.log"}, cfg.Files())
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("SYNCLOG_LEVEL", "loud")

		_, err := ConfigFromEnv()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid console flag", func(t *testing.T) {
		t.Setenv("SYNCLOG_LEVEL", "info")
		t.Setenv("SYNCLOG_CONSOLE", "maybe")

		_, err := ConfigFromEnv()
		require.Error(t, err)
	})
}

func TestEnvConfig_Apply(t *testing.T) {
	t.Parallel()

	cfg := NewConfig().AddFile("existing.log")
	env := &EnvConfig{Level: core.DebugLevel, Console: false, Files: []string{"", "extra.log"}}

	got := env.Apply(cfg)
	assert.Same(t, cfg, got)
	assert.Equal(t, core.DebugLevel, cfg.Level())
	assert.False(t, cfg.Console())
	assert.Equal(t, []string{"existing.log", "extra.log"}, cfg.Files())
}
