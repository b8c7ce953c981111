//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

// tinyGoInput has no keyboard; the watch has no buttons wired yet.
type tinyGoInput struct{}

func (tinyGoInput) Keyboard() Keyboard { return nil }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// motor is the vibration motor on a GPIO.
type motor struct {
	pin machine.Pin
}

func newMotor(pin machine.Pin) *motor {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &motor{pin: pin}
}

func (m *motor) LongPulse() {
	m.pin.High()
	go func() {
		time.Sleep(LongPulseDuration)
		m.pin.Low()
	}()
}

// readFrames delivers length-prefixed frames from uart to in.
func readFrames(uart *machine.UART, in *inbox, l Logger) {
	var dec frameDecoder
	for {
		if uart.Buffered() == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		b, err := uart.ReadByte()
		if err != nil {
			continue
		}
		msg, ok := dec.Feed(b)
		if !ok {
			continue
		}
		if !in.Deliver(msg) {
			l.WriteLineString("hal: inbox full, message dropped")
		}
	}
}
