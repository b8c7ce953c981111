// Package config loads the watch face's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNotFound is returned with defaults when no config file exists.
var ErrNotFound = errors.New("no config file found; using defaults")

type Config struct {
	Use24h   bool    `toml:"use_24h"`
	LogLevel string  `toml:"log_level"` // debug, info, warn or error
	StepHz   int     `toml:"step_hz"`   // event pump rate (default 30)
	Display  Display `toml:"display"`
	Persist  Persist `toml:"persist"`
	Bridge   Bridge  `toml:"bridge"`
	Sim      Sim     `toml:"sim"`

	unknown []string
}

type Display struct {
	Scale int `toml:"scale"` // host window zoom (default 3)
}

type Persist struct {
	FlashPath string `toml:"flash_path"` // host flash image; empty keeps the offset in memory only
	OffsetKey uint32 `toml:"offset_key"` // persist key for the clock offset (default 1)
}

type Bridge struct {
	Enabled bool   `toml:"enabled"`
	NATSURL string `toml:"nats_url"`
	Subject string `toml:"subject"`
}

// Sim is the starting state of the simulated sensors on host.
type Sim struct {
	BatteryPercent int  `toml:"battery_percent"`
	Charging       bool `toml:"charging"`
	Connected      bool `toml:"connected"`
}

func Defaults() *Config {
	return &Config{
		LogLevel: "info",
		StepHz:   30,
		Display:  Display{Scale: 3},
		Persist:  Persist{FlashPath: "zuluface.flash", OffsetKey: 1},
		Bridge: Bridge{
			NATSURL: "nats://127.0.0.1:4222",
			Subject: "zuluface.sync",
		},
		Sim: Sim{BatteryPercent: 80, Connected: true},
	}
}

// Load loads configuration from explicit path or discovered search path.
// Missing file yields defaults and ErrNotFound; parse errors also return
// defaults plus an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	chosen := path
	if chosen == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		return cfg, ErrNotFound
	}
	data, err := os.ReadFile(chosen)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML over the defaults and normalizes the result.
func Parse(data string) (*Config, error) {
	cfg := Defaults()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return Defaults(), fmt.Errorf("parse config: %w", err)
	}
	for _, k := range md.Undecoded() {
		cfg.unknown = append(cfg.unknown, k.String())
	}
	cfg.normalize()
	return cfg, nil
}

// Unknown returns keys present in the file that no field consumed.
func (c *Config) Unknown() []string {
	if len(c.unknown) == 0 {
		return nil
	}
	out := make([]string, len(c.unknown))
	copy(out, c.unknown)
	return out
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "zuluface", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "zuluface", "config.toml"))
	}
	return out
}

// normalize clamps and validates config values after decoding.
func (c *Config) normalize() {
	c.StepHz = clampInt(c.StepHz, 1, 120, 30)
	c.Display.Scale = clampInt(c.Display.Scale, 1, 8, 3)
	if c.Persist.OffsetKey == 0 {
		c.Persist.OffsetKey = 1
	}
	c.Sim.BatteryPercent = clampInt(c.Sim.BatteryPercent, 0, 100, 0)

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if !validLogLevel(c.LogLevel) {
		c.LogLevel = "info"
	}
	if c.Bridge.NATSURL == "" {
		c.Bridge.NATSURL = "nats://127.0.0.1:4222"
	}
	if c.Bridge.Subject == "" {
		c.Bridge.Subject = "zuluface.sync"
	}
}

func clampInt(val, min, max, fallback int) int {
	if val == 0 && fallback != 0 { // allow zero to trigger fallback when min>0
		val = fallback
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func validLogLevel(l string) bool {
	switch l {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
