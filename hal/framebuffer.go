package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers/pixel"
)

var (
	inkRGBA   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	paperRGBA = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// panel is the device side of a framebuffer, such as a Sharp memory LCD.
type panel interface {
	SetPixel(x, y int16, c color.RGBA)
	Display() error
}

// monoFramebuffer keeps a 1-bit image and mirrors writes to an optional panel.
//
// Pixels use pixel.Monochrome semantics: true is paper (white).
type monoFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	img    pixel.Image[pixel.Monochrome]
	panel  panel
}

// width*height must be a multiple of 8 for FillSolidColor to cover every pixel.
func newMonoFramebuffer(width, height int, p panel) *monoFramebuffer {
	if width <= 0 || height <= 0 || (width*height)%8 != 0 {
		panic("hal: framebuffer size must be a positive multiple of 8 pixels")
	}
	f := &monoFramebuffer{
		width:  width,
		height: height,
		img:    pixel.NewImage[pixel.Monochrome](width, height),
		panel:  p,
	}
	f.img.FillSolidColor(pixel.Monochrome(true))
	return f
}

func (f *monoFramebuffer) Width() int          { return f.width }
func (f *monoFramebuffer) Height() int         { return f.height }
func (f *monoFramebuffer) Format() PixelFormat { return PixelFormatMono1 }

func (f *monoFramebuffer) Set(x, y int, ink bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.img.Set(x, y, pixel.Monochrome(!ink))
	if f.panel != nil {
		f.panel.SetPixel(int16(x), int16(y), rgbaFor(ink))
	}
}

func (f *monoFramebuffer) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return !bool(f.img.Get(x, y))
}

func (f *monoFramebuffer) Fill(ink bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.img.FillSolidColor(pixel.Monochrome(!ink))
	if f.panel == nil {
		return
	}
	c := rgbaFor(ink)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.panel.SetPixel(int16(x), int16(y), c)
		}
	}
}

func (f *monoFramebuffer) Present() error {
	if f.panel == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.panel.Display()
}

// snapshotRGBA copies the image into dst as RGBA pixels.
func (f *monoFramebuffer) snapshotRGBA(dst []byte, invert bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			paper := bool(f.img.Get(x, y))
			if invert {
				paper = !paper
			}
			c := pixel.Monochrome(paper).RGBA()
			j := (y*f.width + x) * 4
			if j+3 >= len(dst) {
				return
			}
			dst[j+0] = c.R
			dst[j+1] = c.G
			dst[j+2] = c.B
			dst[j+3] = 0xFF
		}
	}
}

func rgbaFor(ink bool) color.RGBA {
	if ink {
		return inkRGBA
	}
	return paperRGBA
}
