//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"zuluface/app"
	"zuluface/bridge"
	"zuluface/config"
	"zuluface/hal"
	"zuluface/internal/buildinfo"

	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configPath string
		headless   bool
		hz         int
		ticks      uint64
		use24h     bool
		natsURL    string
		keys       string
	)
	flag.StringVar(&configPath, "config", "", "Path to config.toml (default: search XDG paths).")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 0, "Step rate (0 = step_hz from config).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&use24h, "24h", false, "Force the 24-hour clock.")
	flag.StringVar(&natsURL, "nats", "", "Enable the phone bridge on this NATS URL.")
	flag.StringVar(&keys, "keys", "", "Keys to type in headless mode, one per step (e.g. \"s\" to sync).")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if use24h {
		cfg.Use24h = true
	}
	if natsURL != "" {
		cfg.Bridge.Enabled = true
		cfg.Bridge.NATSURL = natsURL
	}
	if hz <= 0 {
		hz = cfg.StepHz
	}

	appCfg := app.Config{
		Use24h:    cfg.Use24h,
		LogLevel:  cfg.LogLevel,
		OffsetKey: cfg.Persist.OffsetKey,
		StepHz:    hz,
	}
	hostCfg := hal.HostConfig{
		FlashPath: cfg.Persist.FlashPath,
		Scale:     cfg.Display.Scale,
		Battery:   hal.BatteryState{Percent: uint8(cfg.Sim.BatteryPercent), Charging: cfg.Sim.Charging},
		Connected: cfg.Sim.Connected && !cfg.Bridge.Enabled,
	}

	var br *bridge.Bridge
	defer func() { br.Close() }()
	newApp := func(h hal.HAL) func() error {
		s := app.New(h, appCfg)
		log.Info().Str("build", buildinfo.Full()).Bool("24h", appCfg.Use24h).Msg("watch face started")
		for _, k := range cfg.Unknown() {
			log.Warn().Str("key", k).Msg("unknown config key")
		}
		if cfg.Bridge.Enabled {
			br = connectBridge(h, cfg.Bridge)
		}
		return s.Step
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Hz: hz, Ticks: ticks, Keys: keys, Host: hostCfg})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(newApp, hostCfg, hz)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		br.Close()
		os.Exit(1)
	}
}

// connectBridge links NATS traffic to the simulated inbox and Bluetooth
// link. A failed dial leaves the watch disconnected.
func connectBridge(h hal.HAL, c config.Bridge) *bridge.Bridge {
	bc := bridge.DefaultConfig()
	bc.URL = c.NATSURL
	bc.Subject = c.Subject
	br, err := bridge.Connect(bc, bridge.Handlers{
		OnMessage: h.Inbox().Deliver,
		OnLink:    h.Bluetooth().Set,
	})
	if err != nil {
		log.Error().Err(err).Str("url", c.NATSURL).Msg("bridge unavailable")
		return nil
	}
	return br
}
