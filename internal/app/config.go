package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config represents the command-line parameters for the application. None
// of them change the rules or the timing of the game.
type Config struct {
	Seed      int64
	Scale     float64
	Volume    float64
	Mute      bool
	LogLevel  string
	LogFormat string
	LogFile   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 1, Volume: 0.6, LogLevel: "info", LogFormat: "console"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the panel sequence (0 picks one from the clock)")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale factor")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound volume between 0 and 1")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (console or json)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file instead of stderr")
}

// Validate checks the values parsed from flags.
func (c *Config) Validate() error {
	var errs []error
	if c.Scale <= 0 || c.Scale > 8 {
		errs = append(errs, fmt.Errorf("scale %.2f out of range (0, 8]", c.Scale))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume %.2f out of range [0, 1]", c.Volume))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil || c.LogLevel == "" {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// EffectiveVolume is the playback volume, zero when muted.
func (c *Config) EffectiveVolume() float64 {
	if c.Mute {
		return 0
	}
	return c.Volume
}

// SeedOrNow returns the configured seed, or one derived from now when unset.
func (c *Config) SeedOrNow(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
