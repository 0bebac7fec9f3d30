package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFlags(t *testing.T) {
	fs := newFlags(t, "--log-file", "/tmp/tide.log", "--log-level", "DEBUG",
		"--skip-intro", "--settle-delay", "10ms")
	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tide.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.SkipIntro)
	assert.Equal(t, 10*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.RevealDelay)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TIDENAV_LOG_LEVEL", "warn")
	t.Setenv("TIDENAV_SKIP_INTRO", "true")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.SkipIntro)
}

func TestFlagBeatsEnv(t *testing.T) {
	t.Setenv("TIDENAV_LOG_LEVEL", "warn")

	cfg, err := Load(newFlags(t, "--log-level", "error"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"zero delays", func(c *Config) { c.SettleDelay, c.RevealDelay = 0, 0 }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"negative settle", func(c *Config) { c.SettleDelay = -time.Second }, false},
		{"negative reveal", func(c *Config) { c.RevealDelay = -time.Second }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("TIDENAV_LOG_LEVEL", "verbose")
	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsMalformedEnv(t *testing.T) {
	tests := []struct {
		name, env, val, want string
	}{
		{"settle delay", "TIDENAV_SETTLE_DELAY", "slow", "settle delay"},
		{"reveal delay", "TIDENAV_REVEAL_DELAY", "soon", "reveal delay"},
		{"skip intro", "TIDENAV_SKIP_INTRO", "maybe", "skip intro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			_, err := Load(nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFlagOverridesMalformedEnv(t *testing.T) {
	t.Setenv("TIDENAV_SETTLE_DELAY", "slow")

	cfg, err := Load(newFlags(t, "--settle-delay", "250ms"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.SettleDelay)
}
