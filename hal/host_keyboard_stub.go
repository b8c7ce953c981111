//go:build !tinygo && !cgo

package hal

// pollKeys has no window to read from; headless runs script keys instead.
func pollKeys(*keyQueue) {}
