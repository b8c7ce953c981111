package render

import (
	"image/color"

	"zuluface/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
)

var (
	ink   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	paper = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// fbDisplay adapts a 1-bit framebuffer to drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	// Dark colors are ink.
	d.fb.Set(int(x), int(y), !bool(pixel.NewMonochrome(c.R, c.G, c.B)))
}

func (d fbDisplay) Display() error {
	if d.fb == nil {
		return hal.ErrNotImplemented
	}
	return d.fb.Present()
}

func fillRect(fb hal.Framebuffer, x, y, w, h int, on bool) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			fb.Set(xx, yy, on)
		}
	}
}

func strokeRect(fb hal.Framebuffer, x, y, w, h int) {
	for xx := x; xx < x+w; xx++ {
		fb.Set(xx, y, true)
		fb.Set(xx, y+h-1, true)
	}
	for yy := y; yy < y+h; yy++ {
		fb.Set(x, yy, true)
		fb.Set(x+w-1, yy, true)
	}
}

func hline(fb hal.Framebuffer, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		fb.Set(x, y, true)
	}
}
