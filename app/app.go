// Package app wires the HAL, persistence, time sync, router and renderer
// into a running watch face.
package app

import (
	"fmt"
	"time"

	"zuluface/face"
	"zuluface/hal"
	"zuluface/kernel"
	"zuluface/persist"
	"zuluface/render"
	"zuluface/router"
	"zuluface/timesync"

	"github.com/rs/zerolog/log"
)

// Config is the runtime configuration shared by host and device builds.
type Config struct {
	Use24h    bool
	LogLevel  string
	OffsetKey uint32
	StepHz    int
}

// DefaultConfig returns the device defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		OffsetKey: timesync.OffsetKey,
		StepHz:    30,
	}
}

// System is a running watch face.
//
// Step must be called from a single goroutine.
type System struct {
	h      hal.HAL
	mb     *kernel.Mailbox[router.Event]
	store  persist.Store
	sync   *timesync.Sync
	router *router.Router
	fb     hal.Framebuffer

	lastSecond int64
	halted     bool
}

// New builds the system and renders the first frame.
func New(h hal.HAL, cfg Config) *System {
	if cfg.OffsetKey == 0 {
		cfg.OffsetKey = timesync.OffsetKey
	}
	SetupLogging(h.Logger(), cfg.LogLevel)

	bootStep(h, "persist")
	store := openStore(h.Flash())

	bootStep(h, "timesync")
	sync := timesync.New(h.Clock(), timesync.NewOffsetStore(store, cfg.OffsetKey))

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	var renderer router.Renderer
	if fb != nil {
		renderer = render.New(fb)
	} else {
		log.Warn().Msg("no display; running without a renderer")
	}

	s := &System{
		h:      h,
		mb:     kernel.NewMailbox[router.Event](kernel.DefaultMailboxSlots),
		store:  store,
		sync:   sync,
		router: router.New(sync, renderer, h.Haptics(), cfg.Use24h),
		fb:     fb,
	}

	bootStep(h, "start")
	s.router.Start(batteryReading(h.Battery().Peek()), h.Bluetooth().Peek())
	s.lastSecond = h.Clock().Now().Unix()
	return s
}

func openStore(f hal.Flash) persist.Store {
	if f == nil {
		log.Warn().Msg("no flash; clock offset will not survive a restart")
		return persist.NewMemStore()
	}
	fs, err := persist.OpenFlash(f, persist.LastBlock(f))
	if err != nil {
		log.Warn().Err(err).Msg("flash store unavailable; using memory")
		return persist.NewMemStore()
	}
	log.Debug().Int("keys", fs.Len()).Msg("flash store opened")
	return fs
}

// Step pumps HAL inputs into the mailbox, posts a tick when the wall-clock
// second changes and handles every queued event.
//
// A panic while handling events halts the system and draws a panic screen;
// later calls do nothing.
func (s *System) Step() error {
	if s.halted {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			s.panicked(r)
		}
	}()

	s.pump()
	s.tick()
	s.router.Drain(s.mb)
	return nil
}

// Halted reports whether a panic stopped the system.
func (s *System) Halted() bool { return s.halted }

// Router exposes the event router.
func (s *System) Router() *router.Router { return s.router }

// Sync exposes the time sync state.
func (s *System) Sync() *timesync.Sync { return s.sync }

// Post queues an event for the next Step, reporting false if the queue is full.
func (s *System) Post(ev router.Event) bool {
	if !s.mb.TrySend(ev) {
		log.Warn().Str("event", fmt.Sprint(ev)).Msg("event queue full; dropped")
		return false
	}
	return true
}

func (s *System) tick() {
	now := s.h.Clock().Now()
	if sec := now.Unix(); sec != s.lastSecond {
		s.lastSecond = sec
		s.Post(router.SecondTick{Time: now})
	}
}

func (s *System) pump() {
	batt := s.h.Battery().Events()
	bt := s.h.Bluetooth().Events()
	inbox := s.h.Inbox().Messages()
	var keys <-chan hal.KeyEvent
	if in := s.h.Input(); in != nil {
		if kb := in.Keyboard(); kb != nil {
			keys = kb.Events()
		}
	}

	for {
		select {
		case st := <-batt:
			s.Post(router.BatteryChanged{Reading: batteryReading(st)})
		case c := <-bt:
			s.Post(router.ConnectivityChanged{Connected: c})
		case msg := <-inbox:
			s.Post(router.InboundMessage{Payload: msg})
		case ev := <-keys:
			s.handleKey(ev)
		default:
			return
		}
	}
}

func batteryReading(st hal.BatteryState) face.BatteryReading {
	return face.BatteryReading{Percent: int(st.Percent), Charging: st.Charging}
}

// Run builds the system and steps it forever at cfg.StepHz.
func Run(h hal.HAL, cfg Config) {
	s := New(h, cfg)
	if cfg.StepHz <= 0 {
		cfg.StepHz = 30
	}
	t := h.Clock().NewTicker(time.Second / time.Duration(cfg.StepHz))
	defer t.Stop()
	for range t.Chan() {
		_ = s.Step()
	}
}
