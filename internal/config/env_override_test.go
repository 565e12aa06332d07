package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("paths", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BANKOCR_INPUT", "/data/in.txt")
		t.Setenv("BANKOCR_OUTPUT", "-")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/data/in.txt", cfg.Input)
		assert.Equal(t, StdStream, cfg.Output)
	})

	t.Run("workers parsed", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BANKOCR_WORKERS", "6")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 6, cfg.Processing.Workers)
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BANKOCR_WORKERS", "many")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 1, cfg.Processing.Workers)
	})

	t.Run("log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BANKOCR_LOG_LEVEL", "debug")

		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty values leave config untouched", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, DefaultConfig(), cfg)
	})
}
