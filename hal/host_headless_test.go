//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	var keys []rune
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		kbd := h.Input().Keyboard()
		return func() error {
			steps++
			for {
				select {
				case ev := <-kbd.Events():
					keys = append(keys, ev.Rune)
					continue
				default:
				}
				return nil
			}
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 4, Keys: "sb"})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 4 {
		t.Fatalf("steps = %d, want 4", steps)
	}
	if string(keys) != "sb" {
		t.Fatalf("keys = %q, want %q", string(keys), "sb")
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless = %v, want %v", err, boom)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunHeadless = %v, want context.Canceled", err)
	}
}
