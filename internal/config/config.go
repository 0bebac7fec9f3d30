// Package config loads runtime settings from flags and TIDENAV_* environment
// variables. Quiz content is not configurable here; it is compiled in.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. TIDENAV_LOG_FILE.
const EnvPrefix = "TIDENAV"

// Config holds runtime settings for the TUI.
type Config struct {
	// LogFile is where structured logs go. Empty disables logging.
	LogFile  string
	LogLevel string

	// SkipIntro begins the quiz without the intro sequence.
	SkipIntro bool

	SettleDelay time.Duration
	RevealDelay time.Duration
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

var levels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		SettleDelay: 800 * time.Millisecond,
		RevealDelay: 500 * time.Millisecond,
	}
}

// Keys and the flags they bind to.
const (
	keyLogFile     = "log-file"
	keyLogLevel    = "log-level"
	keySkipIntro   = "skip-intro"
	keySettleDelay = "settle-delay"
	keyRevealDelay = "reveal-delay"
)

// Load resolves the configuration. Precedence: flags that were set, then
// environment, then defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault(keyLogFile, def.LogFile)
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keySkipIntro, def.SkipIntro)
	v.SetDefault(keySettleDelay, def.SettleDelay)
	v.SetDefault(keyRevealDelay, def.RevealDelay)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, k := range []string{keyLogFile, keyLogLevel, keySkipIntro, keySettleDelay, keyRevealDelay} {
			f := flags.Lookup(k)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(k, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", k, err)
			}
		}
	}

	cfg := Config{
		LogFile:  v.GetString(keyLogFile),
		LogLevel: strings.ToLower(v.GetString(keyLogLevel)),
	}

	// Typed getters return zero values for unparsable input.
	var errs []error
	var err error
	if cfg.SkipIntro, err = cast.ToBoolE(v.Get(keySkipIntro)); err != nil {
		errs = append(errs, fmt.Errorf("%w: skip intro %q", ErrInvalid, v.GetString(keySkipIntro)))
	}
	if cfg.SettleDelay, err = cast.ToDurationE(v.Get(keySettleDelay)); err != nil {
		errs = append(errs, fmt.Errorf("%w: settle delay %q", ErrInvalid, v.GetString(keySettleDelay)))
	}
	if cfg.RevealDelay, err = cast.ToDurationE(v.Get(keyRevealDelay)); err != nil {
		errs = append(errs, fmt.Errorf("%w: reveal delay %q", ErrInvalid, v.GetString(keyRevealDelay)))
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log level and the delays.
func (c Config) Validate() error {
	var errs []error
	known := false
	for _, l := range levels {
		if c.LogLevel == l {
			known = true
			break
		}
	}
	if !known {
		errs = append(errs, fmt.Errorf("%w: log level %q (want one of %s)",
			ErrInvalid, c.LogLevel, strings.Join(levels, ", ")))
	}
	if c.SettleDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: negative settle delay %s", ErrInvalid, c.SettleDelay))
	}
	if c.RevealDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: negative reveal delay %s", ErrInvalid, c.RevealDelay))
	}
	return errors.Join(errs...)
}

// RegisterFlags adds the config flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()
	fs.String(keyLogFile, def.LogFile, "Write JSON logs to this file (env TIDENAV_LOG_FILE)")
	fs.String(keyLogLevel, def.LogLevel, "Log level: debug, info, warn, error")
	fs.Bool(keySkipIntro, def.SkipIntro, "Start at the first question")
	fs.Duration(keySettleDelay, def.SettleDelay, "Pause after each answer")
	fs.Duration(keyRevealDelay, def.RevealDelay, "Pause before the result is shown")
}
