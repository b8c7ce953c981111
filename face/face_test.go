package face

import (
	"testing"
	"time"
)

func at(h, m, s int) time.Time {
	return time.Date(2024, time.January, 5, h, m, s, 0, time.UTC)
}

func TestFormatLocalTime(t *testing.T) {
	tests := []struct {
		tm     time.Time
		use24h bool
		want   string
	}{
		{at(9, 5, 0), false, "9:05a"},
		{at(9, 5, 0), true, "09:05"},
		{at(13, 45, 0), false, "1:45p"},
		{at(13, 45, 0), true, "13:45"},
		{at(0, 0, 0), false, "12:00a"},
		{at(0, 0, 0), true, "00:00"},
		{at(12, 30, 59), false, "12:30p"},
		{at(23, 59, 59), false, "11:59p"},
		{at(10, 0, 0), false, "10:00a"},
	}
	for _, tt := range tests {
		if got := FormatLocalTime(tt.tm, tt.use24h); got != tt.want {
			t.Errorf("FormatLocalTime(%s, %v) = %q, want %q", tt.tm.Format("15:04"), tt.use24h, got, tt.want)
		}
	}
}

func TestFormatLocalDate(t *testing.T) {
	if got := FormatLocalDate(at(9, 0, 0)); got != "Fri Jan 05" {
		t.Fatalf("FormatLocalDate = %q, want %q", got, "Fri Jan 05")
	}
	mon := time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC)
	if got := FormatLocalDate(mon); got != "Mon Feb 26" {
		t.Fatalf("FormatLocalDate = %q, want %q", got, "Mon Feb 26")
	}
}

func TestFormatUTC(t *testing.T) {
	noon := at(12, 0, 0)
	tests := []struct {
		offset   time.Duration
		wantTime string
		wantDate string
	}{
		{0, "12:00:00", "2024-01-05"},
		{5 * time.Hour, "17:00:00", "2024-01-05"},
		{-5 * time.Hour, "07:00:00", "2024-01-05"},
		{13 * time.Hour, "01:00:00", "2024-01-06"},
		{-12*time.Hour - time.Second, "23:59:59", "2024-01-04"},
	}
	for _, tt := range tests {
		gt, gd := FormatUTC(noon, tt.offset)
		if gt != tt.wantTime || gd != tt.wantDate {
			t.Errorf("FormatUTC(noon, %v) = %q,%q, want %q,%q", tt.offset, gt, gd, tt.wantTime, tt.wantDate)
		}
	}
}

func TestSelectBatteryIcon(t *testing.T) {
	tests := []struct {
		r    BatteryReading
		want BatteryIcon
	}{
		{BatteryReading{100, false}, BatteryFull},
		{BatteryReading{100, true}, BatteryFull},
		{BatteryReading{120, false}, BatteryFull},
		{BatteryReading{99, true}, BatteryCharging},
		{BatteryReading{0, true}, BatteryCharging},
		{BatteryReading{57, false}, BatteryNormal},
		{BatteryReading{-3, false}, BatteryNormal},
	}
	for _, tt := range tests {
		if got := SelectBatteryIcon(tt.r); got != tt.want {
			t.Errorf("SelectBatteryIcon(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestSelectBatteryDigits(t *testing.T) {
	if _, ok := SelectBatteryDigits(100); ok {
		t.Fatal("SelectBatteryDigits(100) reported digits")
	}
	if _, ok := SelectBatteryDigits(250); ok {
		t.Fatal("SelectBatteryDigits(250) reported digits")
	}

	tests := []struct {
		percent int
		want    BatteryDigits
	}{
		{57, BatteryDigits{Glyph5, Glyph7, GlyphPercent}},
		{5, BatteryDigits{Glyph0, Glyph5, GlyphPercent}},
		{0, BatteryDigits{Glyph0, Glyph0, GlyphPercent}},
		{99, BatteryDigits{Glyph9, Glyph9, GlyphPercent}},
		{-7, BatteryDigits{Glyph0, Glyph0, GlyphPercent}},
	}
	for _, tt := range tests {
		got, ok := SelectBatteryDigits(tt.percent)
		if !ok || got != tt.want {
			t.Errorf("SelectBatteryDigits(%d) = %v,%v, want %v,true", tt.percent, got, ok, tt.want)
		}
	}
}

func TestSelectBatteryDigitsAlwaysValid(t *testing.T) {
	for p := -50; p <= 150; p++ {
		d, ok := SelectBatteryDigits(p)
		if !ok {
			continue
		}
		if !d.Tens.Valid() || !d.Units.Valid() || d.Tens > Glyph9 || d.Units > Glyph9 {
			t.Fatalf("SelectBatteryDigits(%d) = %v, digits out of range", p, d)
		}
	}
}

func TestGlyphString(t *testing.T) {
	d, _ := SelectBatteryDigits(42)
	if got := d.String(); got != "42%" {
		t.Fatalf("BatteryDigits.String() = %q, want %q", got, "42%")
	}
}

func TestBarWidth(t *testing.T) {
	tests := []struct{ percent, full, want int }{
		{100, 16, 16},
		{50, 16, 8},
		{57, 16, 9},
		{0, 16, 0},
		{130, 16, 16},
		{-1, 16, 0},
		{50, 0, 0},
	}
	for _, tt := range tests {
		if got := BarWidth(tt.percent, tt.full); got != tt.want {
			t.Errorf("BarWidth(%d, %d) = %d, want %d", tt.percent, tt.full, got, tt.want)
		}
	}
}

func TestSelectConnectivityIcon(t *testing.T) {
	if SelectConnectivityIcon(true) != ConnConnected {
		t.Fatal("connected -> want ConnConnected")
	}
	if SelectConnectivityIcon(false) != ConnDisconnected {
		t.Fatal("disconnected -> want ConnDisconnected")
	}
}

func TestStateSetters(t *testing.T) {
	var s State
	s.SetTime(at(13, 45, 10), false)
	s.SetUTC(at(13, 45, 10), -3*time.Hour)
	s.SetBattery(BatteryReading{Percent: 100, Charging: true})
	s.SetConnectivity(true)

	want := State{
		LocalTime:      "1:45p",
		LocalDate:      "Fri Jan 05",
		UTCTime:        "10:45:10",
		UTCDate:        "2024-01-05",
		Battery:        BatteryFull,
		BatteryPercent: 100,
		Conn:           ConnConnected,
	}
	if s != want {
		t.Fatalf("state = %+v, want %+v", s, want)
	}

	s.SetBattery(BatteryReading{Percent: 38})
	if !s.ShowDigits || s.Digits.String() != "38%" || s.Battery != BatteryNormal || s.BatteryPercent != 38 {
		t.Fatalf("after SetBattery(38): %+v", s)
	}
}
