// Package face derives everything the watch face shows from raw inputs.
//
// All functions are pure. The router calls them on every tick or sensor
// event and hands the resulting State to the renderer.
package face

import (
	"strconv"
	"time"
)

const (
	localTime24 = "15:04"
	localDate   = "Mon Jan 02"
	utcTime     = "15:04:05"
	utcDate     = "2006-01-02"
)

// FormatLocalTime formats the wall-clock time of t.
//
// 24h mode is "HH:MM". 12h mode strips the leading zero from the hour and
// appends a lowercase "a" or "p": "9:05a", "12:30p".
func FormatLocalTime(t time.Time, use24h bool) string {
	if use24h {
		return t.Format(localTime24)
	}
	h := t.Hour()
	marker := "a"
	if h >= 12 {
		marker = "p"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	buf := make([]byte, 0, len("12:00a"))
	buf = strconv.AppendInt(buf, int64(h), 10)
	buf = append(buf, ':')
	m := t.Minute()
	buf = append(buf, byte('0'+m/10), byte('0'+m%10))
	buf = append(buf, marker...)
	return string(buf)
}

// FormatLocalDate formats t as "Mon Jan 02".
func FormatLocalDate(t time.Time) string {
	return t.Format(localDate)
}

// FormatUTC returns the "HH:MM:SS" and "YYYY-MM-DD" strings for t+offset.
//
// t is a local wall time in the UTC location (see timesync.Wall), so the
// fields of the shifted value are the UTC fields.
func FormatUTC(t time.Time, offset time.Duration) (timeStr, dateStr string) {
	u := t.Add(offset)
	return u.Format(utcTime), u.Format(utcDate)
}
