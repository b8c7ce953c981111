package face

import "time"

// State is everything the renderer needs for one frame.
type State struct {
	LocalTime string
	LocalDate string
	UTCTime   string
	UTCDate   string

	Battery BatteryIcon
	// Digits is meaningful only when ShowDigits is set.
	Digits     BatteryDigits
	ShowDigits bool
	// BatteryPercent is the clamped percent driving the bar graph.
	BatteryPercent int

	Conn ConnIcon
}

// SetTime recomputes the local time and date strings.
func (s *State) SetTime(t time.Time, use24h bool) {
	s.LocalTime = FormatLocalTime(t, use24h)
	s.LocalDate = FormatLocalDate(t)
}

// SetUTC recomputes the UTC strings from local wall time and offset.
func (s *State) SetUTC(t time.Time, offset time.Duration) {
	s.UTCTime, s.UTCDate = FormatUTC(t, offset)
}

// SetBattery recomputes the battery icon, digits and bar value.
func (s *State) SetBattery(r BatteryReading) {
	s.Battery = SelectBatteryIcon(r)
	s.Digits, s.ShowDigits = SelectBatteryDigits(r.Percent)
	s.BatteryPercent = ClampPercent(r.Percent)
}

// SetConnectivity recomputes the connectivity icon.
func (s *State) SetConnectivity(connected bool) {
	s.Conn = SelectConnectivityIcon(connected)
}
