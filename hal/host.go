//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// HostConfig sets up the simulated watch on a desktop.
type HostConfig struct {
	// FlashPath is the flash image file; empty disables persistence.
	FlashPath string
	// Scale is the window zoom factor.
	Scale int

	Battery   BatteryState
	Connected bool

	// Clock overrides the real clock, for tests.
	Clock clockwork.Clock
}

type hostHAL struct {
	logger  *hostLogger
	fb      *monoFramebuffer
	kbd     *keyQueue
	clock   clockwork.Clock
	flash   Flash
	file    *FlashFile
	battery batterySensor
	bt      linkSensor
	haptics *hostHaptics
	inbox   *inbox
	scale   int
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	logger := &hostLogger{w: os.Stdout}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 3
	}
	h := &hostHAL{
		logger:  logger,
		fb:      newMonoFramebuffer(ScreenWidth, ScreenHeight, nil),
		kbd:     newKeyQueue(64),
		clock:   clock,
		battery: newBatterySensor(cfg.Battery),
		bt:      newLinkSensor(cfg.Connected),
		haptics: &hostHaptics{clock: clock, logger: logger},
		inbox:   newInbox(16),
		scale:   cfg.Scale,
	}
	if cfg.FlashPath != "" {
		f, err := OpenFlashFile(cfg.FlashPath, 0)
		if err != nil {
			logger.WriteLineString(fmt.Sprintf("hal: flash unavailable: %v", err))
		} else {
			h.file = f
			h.flash = f
		}
	}
	return h
}

func (h *hostHAL) Logger() Logger         { return h.logger }
func (h *hostHAL) Display() Display       { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input           { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Flash() Flash           { return h.flash }
func (h *hostHAL) Clock() clockwork.Clock { return h.clock }
func (h *hostHAL) Battery() Battery       { return h.battery }
func (h *hostHAL) Bluetooth() Bluetooth   { return h.bt }
func (h *hostHAL) Haptics() Haptics       { return h.haptics }
func (h *hostHAL) Inbox() Inbox           { return h.inbox }

func (h *hostHAL) close() {
	if h.file != nil {
		_ = h.file.Close()
	}
}

type hostDisplay struct {
	fb *monoFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *keyQueue
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// keyQueue buffers key events from the window or a headless script.
type keyQueue struct {
	ch chan KeyEvent
}

func newKeyQueue(n int) *keyQueue {
	return &keyQueue{ch: make(chan KeyEvent, n)}
}

func (q *keyQueue) Events() <-chan KeyEvent { return q.ch }

// push reports false when the queue is full and ev was dropped.
func (q *keyQueue) push(ev KeyEvent) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostHaptics stands in for the vibration motor; the window flashes while a
// pulse is active.
type hostHaptics struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	logger *hostLogger
	pulses int
	until  time.Time
}

func (v *hostHaptics) LongPulse() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pulses++
	v.until = v.clock.Now().Add(LongPulseDuration)
	v.logger.WriteLineString("haptics: long pulse")
}

func (v *hostHaptics) active() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.clock.Now().Before(v.until)
}
