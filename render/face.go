// Package render draws the watch face into a 1-bit framebuffer.
package render

import (
	"fmt"

	"zuluface/face"
	"zuluface/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Layout of the 144x168 screen.
const (
	marginX = 4
	topY    = 4

	battW    = 20
	battH    = 10
	battX    = hal.ScreenWidth - marginX - battW - 2
	battNubW = 2
	battNubH = 4
	// BarFull is the width of a full battery bar.
	BarFull = battW - 4
	barX    = battX + 2
	barY    = topY + 2
	barH    = battH - 4

	digitsY   = topY + 2
	digitsGap = 1

	localTimeBaseline = 62
	localDateBaseline = 84
	dividerY          = 96
	utcTimeBaseline   = 124
	utcDateBaseline   = 146
)

var (
	localTimeFont tinyfont.Fonter = &freemono.Bold18pt7b
	utcTimeFont   tinyfont.Fonter = &freemono.Bold12pt7b
	smallFont     tinyfont.Fonter = &freemono.Regular9pt7b
)

// Face renders face.State frames.
type Face struct {
	fb hal.Framebuffer
	d  fbDisplay
}

// New returns a Face drawing into fb.
func New(fb hal.Framebuffer) *Face {
	return &Face{fb: fb, d: fbDisplay{fb: fb}}
}

// Render redraws the whole screen from s and presents it.
func (f *Face) Render(s face.State) error {
	if f.fb == nil {
		return fmt.Errorf("render: %w", hal.ErrNotImplemented)
	}
	f.fb.Fill(false)

	f.drawConnectivity(s.Conn)
	f.drawBattery(s)

	f.centered(localTimeFont, localTimeBaseline, s.LocalTime)
	f.centered(smallFont, localDateBaseline, s.LocalDate)
	hline(f.fb, 8, f.fb.Width()-9, dividerY)
	f.centered(utcTimeFont, utcTimeBaseline, s.UTCTime)
	f.centered(smallFont, utcDateBaseline, s.UTCDate)

	if err := f.fb.Present(); err != nil {
		return fmt.Errorf("render: present: %w", err)
	}
	return nil
}

func (f *Face) centered(font tinyfont.Fonter, baseline int, s string) {
	if s == "" {
		return
	}
	w, _ := tinyfont.LineWidth(font, s)
	x := (f.fb.Width() - int(w)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(f.d, font, int16(x), int16(baseline), s, ink)
}

func (f *Face) drawConnectivity(c face.ConnIcon) {
	icon := connectedIcon
	if c == face.ConnDisconnected {
		icon = disconnectedIcon
	}
	icon.draw(f.fb, marginX, topY)
}

func (f *Face) drawBattery(s face.State) {
	strokeRect(f.fb, battX, topY, battW, battH)
	fillRect(f.fb, battX+battW, topY+(battH-battNubH)/2, battNubW, battNubH, true)

	switch s.Battery {
	case face.BatteryFull:
		fillRect(f.fb, barX, barY, BarFull, barH, true)
		fullBadge.draw(f.fb, battX-digitsGap*2-fullBadge.w, digitsY)
		return
	case face.BatteryCharging:
		boltIcon.draw(f.fb, battX+(battW-boltIcon.w)/2, topY+(battH-boltIcon.h)/2)
	default:
		fillRect(f.fb, barX, barY, face.BarWidth(s.BatteryPercent, BarFull), barH, true)
	}

	if !s.ShowDigits {
		return
	}
	// Right-aligned against the battery: tens, units, percent.
	x := battX - digitsGap*2
	for _, g := range []face.Glyph{s.Digits.Percent, s.Digits.Units, s.Digits.Tens} {
		if !g.Valid() {
			continue
		}
		bm := glyphs[g]
		x -= bm.w
		bm.draw(f.fb, x, digitsY)
		x -= digitsGap
	}
}
