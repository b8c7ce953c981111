package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := Defaults()
	if c.StepHz != 30 || c.Display.Scale != 3 || c.Persist.OffsetKey != 1 {
		t.Fatalf("defaults = %+v", c)
	}
	if c.Use24h || !c.Sim.Connected || c.Sim.BatteryPercent != 80 {
		t.Fatalf("defaults = %+v", c)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	c, err := Parse(`
use_24h = true
log_level = "DEBUG"

[sim]
battery_percent = 100
charging = true

[bridge]
enabled = true
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !c.Use24h || c.LogLevel != "debug" {
		t.Fatalf("top level = %+v", c)
	}
	if c.Sim.BatteryPercent != 100 || !c.Sim.Charging || !c.Sim.Connected {
		t.Fatalf("sim = %+v", c.Sim)
	}
	if !c.Bridge.Enabled || c.Bridge.Subject != "zuluface.sync" {
		t.Fatalf("bridge = %+v", c.Bridge)
	}
	if c.Persist.FlashPath != "zuluface.flash" {
		t.Fatalf("flash path = %q", c.Persist.FlashPath)
	}
}

func TestParseClamps(t *testing.T) {
	tests := []struct {
		name string
		toml string
		ok   func(*Config) bool
	}{
		{"step hz high", "step_hz = 1000", func(c *Config) bool { return c.StepHz == 120 }},
		{"step hz zero", "step_hz = 0", func(c *Config) bool { return c.StepHz == 30 }},
		{"scale low", "[display]\nscale = -2", func(c *Config) bool { return c.Display.Scale == 1 }},
		{"battery high", "[sim]\nbattery_percent = 140", func(c *Config) bool { return c.Sim.BatteryPercent == 100 }},
		{"battery zero", "[sim]\nbattery_percent = 0", func(c *Config) bool { return c.Sim.BatteryPercent == 0 }},
		{"bad level", `log_level = "loud"`, func(c *Config) bool { return c.LogLevel == "info" }},
		{"offset key zero", "[persist]\noffset_key = 0", func(c *Config) bool { return c.Persist.OffsetKey == 1 }},
		{"empty subject", "[bridge]\nsubject = \"\"", func(c *Config) bool { return c.Bridge.Subject == "zuluface.sync" }},
	}
	for _, tt := range tests {
		c, err := Parse(tt.toml)
		if err != nil {
			t.Fatalf("%s: Parse: %v", tt.name, err)
		}
		if !tt.ok(c) {
			t.Errorf("%s: got %+v", tt.name, c)
		}
	}
}

func TestParseReportsUnknownKeys(t *testing.T) {
	c, err := Parse("use_24h = true\ncolour = \"red\"\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := c.Unknown(); len(got) != 1 || got[0] != "colour" {
		t.Fatalf("Unknown() = %v", got)
	}
}

func TestParseError(t *testing.T) {
	c, err := Parse("use_24h = ")
	if err == nil {
		t.Fatal("Parse accepted invalid TOML")
	}
	if c.StepHz != 30 {
		t.Fatalf("defaults not returned: %+v", c)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("use_24h = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Use24h {
		t.Fatal("use_24h not loaded")
	}
}

func TestLoadSearchPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())
	dir := filepath.Join(xdg, "zuluface")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("step_hz = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.StepHz != 10 {
		t.Fatalf("StepHz = %d, want 10", c.StepHz)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() err = %v, want ErrNotFound", err)
	}
	if c == nil || c.StepHz != 30 {
		t.Fatalf("Load() = %+v, want defaults", c)
	}
}

func TestLoadUnreadable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() err = %v, want read error", err)
	}
}
