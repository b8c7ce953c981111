package render

import (
	"zuluface/face"
	"zuluface/hal"
)

// bitmap is a small 1-bit image; row strings use '#' for ink.
type bitmap struct {
	w, h int
	rows []string
}

func mustBitmap(rows ...string) bitmap {
	w := len(rows[0])
	for _, r := range rows {
		if len(r) != w {
			panic("render: ragged bitmap")
		}
	}
	return bitmap{w: w, h: len(rows), rows: rows}
}

func (b bitmap) draw(fb hal.Framebuffer, x, y int) {
	for yy, row := range b.rows {
		for xx := 0; xx < len(row); xx++ {
			if row[xx] == '#' {
				fb.Set(x+xx, y+yy, true)
			}
		}
	}
}

// Battery readout glyphs, 3x5 (percent sign 5x5).
var glyphs = [...]bitmap{
	face.Glyph0: mustBitmap("###", "#.#", "#.#", "#.#", "###"),
	face.Glyph1: mustBitmap(".#.", "##.", ".#.", ".#.", "###"),
	face.Glyph2: mustBitmap("###", "..#", "###", "#..", "###"),
	face.Glyph3: mustBitmap("###", "..#", ".##", "..#", "###"),
	face.Glyph4: mustBitmap("#.#", "#.#", "###", "..#", "..#"),
	face.Glyph5: mustBitmap("###", "#..", "###", "..#", "###"),
	face.Glyph6: mustBitmap("###", "#..", "###", "#.#", "###"),
	face.Glyph7: mustBitmap("###", "..#", ".#.", ".#.", ".#."),
	face.Glyph8: mustBitmap("###", "#.#", "###", "#.#", "###"),
	face.Glyph9: mustBitmap("###", "#.#", "###", "..#", "###"),
	face.GlyphPercent: mustBitmap(
		"##..#",
		"##.#.",
		"..#..",
		".#.##",
		"#..##",
	),
}

var (
	boltIcon = mustBitmap(
		"...##...",
		"..##....",
		".######.",
		"....##..",
		"...##...",
		"..#.....",
	)

	connectedIcon = mustBitmap(
		"...#....",
		"...##...",
		"#..#.#..",
		".#.#..#.",
		"..###...",
		"..###...",
		".#.#..#.",
		"#..#.#..",
		"...##...",
		"...#....",
	)

	disconnectedIcon = mustBitmap(
		"#..#...#",
		".#.##.#.",
		"#.##.#..",
		".#.##...",
		"..##....",
		"..###...",
		".#.##.#.",
		"#..#.#.#",
		"...##..#",
		"...#....",
	)

	fullBadge = mustBitmap(
		"####.#..#.#....#...",
		"#....#..#.#....#...",
		"###..#..#.#....#...",
		"#....#..#.#....#...",
		"#.....##..####.####",
	)
)
