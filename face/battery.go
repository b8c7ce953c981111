package face

import "fmt"

// BatteryReading is one snapshot from the battery sensor.
type BatteryReading struct {
	Percent  int
	Charging bool
}

func (r BatteryReading) String() string {
	if r.Charging {
		return fmt.Sprintf("%d%% charging", r.Percent)
	}
	return fmt.Sprintf("%d%%", r.Percent)
}

// BatteryIcon selects the battery artwork.
type BatteryIcon uint8

const (
	BatteryNormal BatteryIcon = iota
	BatteryCharging
	BatteryFull
)

func (i BatteryIcon) String() string {
	switch i {
	case BatteryNormal:
		return "normal"
	case BatteryCharging:
		return "charging"
	case BatteryFull:
		return "full"
	default:
		return fmt.Sprintf("BatteryIcon(%d)", uint8(i))
	}
}

// Glyph selects one of the small pre-rendered battery readout glyphs.
type Glyph uint8

const (
	Glyph0 Glyph = iota
	Glyph1
	Glyph2
	Glyph3
	Glyph4
	Glyph5
	Glyph6
	Glyph7
	Glyph8
	Glyph9
	GlyphPercent

	glyphCount
)

// DigitGlyph returns the glyph for a decimal digit d in [0,9].
func DigitGlyph(d int) Glyph {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("face: digit %d out of range", d))
	}
	return Glyph0 + Glyph(d)
}

func (g Glyph) String() string {
	switch {
	case g <= Glyph9:
		return string(rune('0' + g))
	case g == GlyphPercent:
		return "%"
	default:
		return fmt.Sprintf("Glyph(%d)", uint8(g))
	}
}

// Valid reports whether g names a glyph.
func (g Glyph) Valid() bool { return g < glyphCount }

// BatteryDigits is the tens, units and percent-sign glyph triple.
type BatteryDigits struct {
	Tens, Units, Percent Glyph
}

func (d BatteryDigits) String() string {
	return d.Tens.String() + d.Units.String() + d.Percent.String()
}

// ClampPercent clamps p to [0,100].
func ClampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// SelectBatteryIcon picks Full at 100%, else Charging while charging, else
// Normal.
func SelectBatteryIcon(r BatteryReading) BatteryIcon {
	switch {
	case ClampPercent(r.Percent) == 100:
		return BatteryFull
	case r.Charging:
		return BatteryCharging
	default:
		return BatteryNormal
	}
}

// SelectBatteryDigits returns the readout glyphs for percent.
//
// It reports false at 100%, where the full icon replaces the readout.
// Values above 100 are treated as 100; other values are clamped to [0,99].
func SelectBatteryDigits(percent int) (BatteryDigits, bool) {
	p := ClampPercent(percent)
	if p == 100 {
		return BatteryDigits{}, false
	}
	return BatteryDigits{
		Tens:    DigitGlyph(p / 10),
		Units:   DigitGlyph(p % 10),
		Percent: GlyphPercent,
	}, true
}

// BarWidth returns the filled width of a battery bar full pixels wide.
func BarWidth(percent, full int) int {
	if full <= 0 {
		return 0
	}
	return ClampPercent(percent) * full / 100
}
