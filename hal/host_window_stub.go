//go:build !tinygo && !cgo

package hal

import "fmt"

// RunWindow needs ebiten, which needs cgo on desktop targets. Use
// RunHeadless instead.
func RunWindow(func(HAL) func() error, HostConfig, int) error {
	return fmt.Errorf("window mode requires CGO_ENABLED=1: %w", ErrNotImplemented)
}
