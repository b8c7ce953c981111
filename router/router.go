// Package router dispatches watch face events.
//
// Events are handled one at a time to completion. All mutable face state
// lives in the Router; the only durable value, the clock offset, is owned
// by timesync.Sync.
package router

import (
	"context"
	"fmt"
	"time"

	"zuluface/face"
	"zuluface/kernel"
	"zuluface/proto"
	"zuluface/timesync"

	"github.com/rs/zerolog/log"
)

// Renderer draws a face state.
type Renderer interface {
	Render(face.State) error
}

// Haptics drives the vibration motor.
type Haptics interface {
	LongPulse()
}

// faceContext is the state carried between events.
type faceContext struct {
	state face.State

	use24h   bool
	lastTick time.Time
	battery  face.BatteryReading

	// connected is the baseline for disconnect edge detection.
	connected bool
}

// Router applies events to the face state and renders the result.
type Router struct {
	sync    *timesync.Sync
	render  Renderer
	haptics Haptics

	fc     faceContext
	frames uint64
}

// New returns a Router. render and haptics may be nil.
func New(sync *timesync.Sync, render Renderer, haptics Haptics, use24h bool) *Router {
	return &Router{
		sync:    sync,
		render:  render,
		haptics: haptics,
		fc:      faceContext{use24h: use24h},
	}
}

// Start seeds the state from the startup peeks and renders the first frame.
//
// The connectivity peek only sets the edge baseline; it never alerts.
func (r *Router) Start(reading face.BatteryReading, connected bool) {
	r.fc.battery = reading
	r.fc.connected = connected
	r.fc.state.SetBattery(reading)
	r.fc.state.SetConnectivity(connected)
	r.applyTick(r.sync.LocalNow())

	log.Info().
		Stringer("battery", reading).
		Bool("connected", connected).
		Stringer("offset", r.sync.Offset()).
		Msg("watch face started")
	r.present()
}

// Handle processes one event to completion.
func (r *Router) Handle(ev Event) {
	switch e := ev.(type) {
	case SecondTick:
		r.applyTick(e.Time)
	case BatteryChanged:
		r.fc.battery = e.Reading
		r.fc.state.SetBattery(e.Reading)
	case ConnectivityChanged:
		r.applyConnectivity(e.Connected)
	case SyncMessageReceived:
		r.applySync(e.UnixSeconds)
	case InboundMessage:
		unix, err := proto.DecodeSync(e.Payload)
		if err != nil {
			log.Warn().Err(err).Int("bytes", len(e.Payload)).Msg("dropping malformed sync message")
			return
		}
		r.applySync(unix)
	case ToggleClockStyle:
		r.fc.use24h = !r.fc.use24h
		r.fc.state.SetTime(r.tickTime(), r.fc.use24h)
		log.Debug().Bool("use_24h", r.fc.use24h).Msg("clock style changed")
	default:
		log.Warn().Str("event", fmt.Sprintf("%T", ev)).Msg("unknown event")
		return
	}
	r.present()
}

// Drain handles every queued event without blocking and returns the count.
func (r *Router) Drain(mb *kernel.Mailbox[Event]) int {
	n := 0
	for {
		ev, ok := mb.TryRecv()
		if !ok {
			return n
		}
		r.Handle(ev)
		n++
	}
}

// Run handles events from mb until ctx is done.
func (r *Router) Run(ctx context.Context, mb *kernel.Mailbox[Event]) error {
	for {
		ev, err := mb.Recv(ctx)
		if err != nil {
			return err
		}
		r.Handle(ev)
	}
}

// State returns the current face state.
func (r *Router) State() face.State { return r.fc.state }

// Use24h reports the current clock style.
func (r *Router) Use24h() bool { return r.fc.use24h }

// Connected reports the last known link state.
func (r *Router) Connected() bool { return r.fc.connected }

// Battery returns the last battery reading.
func (r *Router) Battery() face.BatteryReading { return r.fc.battery }

// Frames returns the number of frames handed to the renderer.
func (r *Router) Frames() uint64 { return r.frames }

func (r *Router) applyTick(t time.Time) {
	t = timesync.Wall(t)
	r.fc.lastTick = t
	r.fc.state.SetTime(t, r.fc.use24h)
	r.fc.state.SetUTC(t, r.sync.Offset().Duration())
}

func (r *Router) applyConnectivity(connected bool) {
	was := r.fc.connected
	r.fc.connected = connected
	r.fc.state.SetConnectivity(connected)
	if was && !connected {
		log.Info().Msg("bluetooth disconnected")
		if r.haptics != nil {
			r.haptics.LongPulse()
		}
	} else if !was && connected {
		log.Info().Msg("bluetooth connected")
	}
}

func (r *Router) applySync(unix int64) {
	r.sync.OnSyncMessage(unix)
	// Refresh UTC now rather than on the next tick.
	r.fc.state.SetUTC(r.sync.LocalNow(), r.sync.Offset().Duration())
}

func (r *Router) tickTime() time.Time {
	if r.fc.lastTick.IsZero() {
		return r.sync.LocalNow()
	}
	return r.fc.lastTick
}

func (r *Router) present() {
	if r.render == nil {
		return
	}
	if err := r.render.Render(r.fc.state); err != nil {
		log.Error().Err(err).Msg("render failed")
		return
	}
	r.frames++
}
