package timesync

import "time"

// Wall converts an instant to local wall-clock representation.
//
// The watch RTC counts local wall time, so "seconds since epoch" on the
// device is the wall reading taken as if it were UTC. Wall returns a time in
// the UTC location whose fields equal t's fields in t's own location. For a
// clock without zone information (t already in UTC) it is the identity.
func Wall(t time.Time) time.Time {
	_, off := t.Zone()
	return t.UTC().Add(time.Duration(off) * time.Second)
}
