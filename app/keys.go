package app

import (
	"zuluface/hal"
	"zuluface/proto"
	"zuluface/router"

	"github.com/rs/zerolog/log"
)

const batteryKeyStep = 5

// handleKey drives the simulated sensors from the keyboard:
//
//	Up/Down  battery +/- 5%
//	c        toggle charging
//	b        toggle Bluetooth
//	s        sync from the host clock
//	t        toggle 12h/24h
func (s *System) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	batt := s.h.Battery()
	switch {
	case ev.Code == hal.KeyUp:
		st := batt.Peek()
		st.Percent = uint8(min(int(st.Percent)+batteryKeyStep, 100))
		batt.Set(st)
	case ev.Code == hal.KeyDown:
		st := batt.Peek()
		st.Percent = uint8(max(int(st.Percent)-batteryKeyStep, 0))
		batt.Set(st)
	case ev.Rune == 'c':
		st := batt.Peek()
		st.Charging = !st.Charging
		batt.Set(st)
	case ev.Rune == 'b':
		bt := s.h.Bluetooth()
		bt.Set(!bt.Peek())
	case ev.Rune == 's':
		unix := s.h.Clock().Now().Unix()
		if !s.h.Inbox().Deliver(proto.EncodeSync(unix)) {
			log.Warn().Msg("inbox full; sync dropped")
		}
	case ev.Rune == 't':
		s.Post(router.ToggleClockStyle{})
	}
}
