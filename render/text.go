package render

import (
	"strings"
	"unicode/utf8"

	"zuluface/hal"

	"tinygo.org/x/tinyfont"
)

const textLineHeight = 12

// Text fills the screen with lines of text, wrapping long lines, and
// presents it. Lines that do not fit are dropped.
func Text(fb hal.Framebuffer, lines []string) error {
	if fb == nil {
		return hal.ErrNotImplemented
	}
	fb.Fill(false)
	d := fbDisplay{fb: fb}

	_, cw := tinyfont.LineWidth(smallFont, "0")
	cols := 1
	if cw > 0 {
		cols = fb.Width() / int(cw)
	}

	y := textLineHeight
	for _, line := range lines {
		for line != "" {
			if y > fb.Height() {
				return fb.Present()
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, smallFont, 0, int16(y), chunk, ink)
			y += textLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	return fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
