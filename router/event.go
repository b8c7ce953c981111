package router

import (
	"fmt"
	"time"

	"zuluface/face"
)

// Event is one input to the router.
type Event interface {
	event()
}

// SecondTick is the once-per-second timer. Time is the local wall clock.
type SecondTick struct {
	Time time.Time
}

// BatteryChanged carries a new battery snapshot.
type BatteryChanged struct {
	Reading face.BatteryReading
}

// ConnectivityChanged carries the new Bluetooth link state.
type ConnectivityChanged struct {
	Connected bool
}

// SyncMessageReceived carries the phone's Unix time in seconds.
type SyncMessageReceived struct {
	UnixSeconds int64
}

// InboundMessage is a raw, still-encoded message from the phone.
type InboundMessage struct {
	Payload []byte
}

// ToggleClockStyle switches between 12h and 24h local time.
type ToggleClockStyle struct{}

func (SecondTick) event()          {}
func (BatteryChanged) event()      {}
func (ConnectivityChanged) event() {}
func (SyncMessageReceived) event() {}
func (InboundMessage) event()      {}
func (ToggleClockStyle) event()    {}

func (e SecondTick) String() string          { return "tick " + e.Time.Format(time.TimeOnly) }
func (e BatteryChanged) String() string      { return "battery " + e.Reading.String() }
func (e ConnectivityChanged) String() string { return fmt.Sprintf("connected=%v", e.Connected) }
func (e SyncMessageReceived) String() string { return fmt.Sprintf("sync %d", e.UnixSeconds) }
func (e InboundMessage) String() string      { return fmt.Sprintf("inbound %d bytes", len(e.Payload)) }
func (ToggleClockStyle) String() string      { return "toggle clock style" }
