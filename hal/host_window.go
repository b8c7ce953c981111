//go:build !tinygo && cgo

package hal

import (
	"zuluface/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window scaled by cfg.Scale and steps the app
// tps times a second. The window inverts while a haptic pulse is active.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg HostConfig, tps int) error {
	h := newHost(cfg)
	defer h.close()

	if tps <= 0 {
		tps = 30
	}
	w := &watchWindow{
		h:    h,
		step: newApp(h),
		rgba: make([]byte, h.fb.width*h.fb.height*4),
		img:  ebiten.NewImage(h.fb.width, h.fb.height),
	}
	ebiten.SetWindowTitle("zuluface " + buildinfo.Short())
	ebiten.SetWindowSize(h.fb.width*h.scale, h.fb.height*h.scale)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(w)
}

// watchWindow is the ebiten.Game for the simulated watch.
type watchWindow struct {
	h    *hostHAL
	step func() error
	rgba []byte
	img  *ebiten.Image
}

func (w *watchWindow) Update() error {
	pollKeys(w.h.kbd)
	if w.step == nil {
		return nil
	}
	return w.step()
}

func (w *watchWindow) Draw(screen *ebiten.Image) {
	w.h.fb.snapshotRGBA(w.rgba, w.h.haptics.active())
	w.img.WritePixels(w.rgba)
	screen.DrawImage(w.img, nil)
}

// Layout keeps the logical screen at panel resolution; ebiten scales it to
// the window.
func (w *watchWindow) Layout(int, int) (int, int) {
	return w.h.fb.width, w.h.fb.height
}
