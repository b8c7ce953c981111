//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"zuluface/hal"
	"zuluface/render"
)

var (
	bootDiagMu   sync.Mutex
	bootDiagStep string
	bootDiagOnce sync.Once
)

// bootStep records the current boot stage, streams it to the UART and USB
// CDC every 250ms, and shows it on screen.
func bootStep(h hal.HAL, msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()

	if h == nil {
		return
	}
	bootDiagOnce.Do(func() { go bootDiagLoop(h.Logger()) })

	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			_ = render.Text(fb, []string{"zuluface boot", msg})
		}
	}
}

func bootDiagLoop(l hal.Logger) {
	for {
		bootDiagMu.Lock()
		step := bootDiagStep
		bootDiagMu.Unlock()

		if step == "" {
			step = "<empty>"
		}
		line := "bootdiag: " + step

		if l != nil {
			l.WriteLineString(line)
		}

		// Also stream to USB CDC when it becomes available.
		if usb := machine.USBCDC; usb != nil {
			_, _ = usb.Write([]byte(line + "\r\n"))
		}

		time.Sleep(250 * time.Millisecond)
	}
}
