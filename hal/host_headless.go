//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Hz is the step rate (default 30).
	Hz int
	// Ticks stops the run after this many steps; 0 runs until ctx ends.
	Ticks uint64
	// Keys are typed one per step, starting with the first.
	Keys string
	Host HostConfig
}

// RunHeadless runs the watch face without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	hz := cfg.Hz
	if hz <= 0 {
		hz = 30
	}
	period := time.Second / time.Duration(hz)
	if period <= 0 {
		return fmt.Errorf("headless: %d Hz is too fast", hz)
	}

	h := newHost(cfg.Host)
	defer h.close()
	step := newApp(h)
	script := []rune(cfg.Keys)

	t := h.clock.NewTicker(period)
	defer t.Stop()
	for n := uint64(1); ; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.Chan():
		}
		if len(script) > 0 {
			h.kbd.push(KeyEvent{Press: true, Rune: script[0]})
			script = script[1:]
		}
		if step != nil {
			if err := step(); err != nil {
				return fmt.Errorf("headless step %d: %w", n, err)
			}
		}
		if cfg.Ticks > 0 && n >= cfg.Ticks {
			return nil
		}
	}
}
