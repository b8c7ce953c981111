package hal

import (
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// ScreenWidth and ScreenHeight are the Sharp LS013B7DH05 panel size.
	ScreenWidth  = 144
	ScreenHeight = 168

	// LongPulseDuration is how long the motor runs for a long pulse.
	LongPulseDuration = 500 * time.Millisecond
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	ErrFlashWriteRequiresErase = errors.New("flash write requires erase")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMono1 is 1 bit per pixel: ink or paper.
	PixelFormatMono1 PixelFormat = iota + 1
)

// Framebuffer is a 1-bit pixel buffer plus a "present" hook.
//
// Coordinates outside the buffer are ignored by Set and read as paper by Get.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Set(x, y int, ink bool)
	Get(x, y int) bool
	Fill(ink bool)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event. Text keys carry Rune with KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// BatteryState is one battery sample.
type BatteryState struct {
	Percent  uint8
	Charging bool
}

// Battery reports charge state. Events fire only when the state changes.
type Battery interface {
	Peek() BatteryState
	Events() <-chan BatteryState
	Set(BatteryState)
}

// Bluetooth reports the phone link state. Events fire only on change.
type Bluetooth interface {
	Peek() bool
	Events() <-chan bool
	Set(connected bool)
}

// Haptics drives the vibration motor.
type Haptics interface {
	LongPulse()
}

// Inbox receives raw messages from the phone.
type Inbox interface {
	Messages() <-chan []byte
	// Deliver queues msg, reporting false when the inbox is full.
	Deliver(msg []byte) bool
}

// HAL provides the only contact point between the watch face and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Flash() Flash
	Clock() clockwork.Clock
	Battery() Battery
	Bluetooth() Bluetooth
	Haptics() Haptics
	Inbox() Inbox
}
