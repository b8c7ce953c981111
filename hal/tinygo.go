//go:build tinygo && baremetal && rp2040

package hal

import (
	"machine"

	"github.com/jonboulle/clockwork"
)

// Board wiring (Raspberry Pi Pico carrier).
const (
	pinDisplayCS = machine.GP17
	pinMotor     = machine.GP14
	pinLinkState = machine.GP15
	pinVBUS      = machine.GP24
	pinVSYS      = machine.ADC3 // GP29, VSYS/3
)

type tinyGoHAL struct {
	logger  *uartLogger
	fb      Framebuffer
	clock   clockwork.Clock
	flash   Flash
	battery batterySensor
	bt      linkSensor
	haptics *motor
	inbox   *inbox
}

// New returns the watch HAL for a Pico with a Sharp LS013B7DH05.
//
// UART0 on GP0 (TX) / GP1 (RX) at 115200 8N1 carries logs. UART1 on GP4 /
// GP5 at 9600 talks to the BLE module. The display is on SPI0.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var fb Framebuffer
	if p, err := newSharpPanel(); err != nil {
		logger.WriteLineString("hal: display: " + err.Error())
		fb = newMonoFramebuffer(ScreenWidth, ScreenHeight, nil)
	} else {
		fb = newMonoFramebuffer(ScreenWidth, ScreenHeight, p)
	}

	h := &tinyGoHAL{
		logger:  logger,
		fb:      fb,
		clock:   clockwork.NewRealClock(),
		flash:   newRP2Flash(),
		haptics: newMotor(pinMotor),
		inbox:   newInbox(8),
	}

	batt := newBatteryMonitor(pinVSYS, pinVBUS)
	h.battery = newBatterySensor(batt.sample())
	go batt.run(h.battery)

	link := newLinkMonitor(pinLinkState)
	h.bt = newLinkSensor(link.sample())
	go link.run(h.bt)

	bleUART := machine.UART1
	bleUART.Configure(machine.UARTConfig{
		BaudRate: 9600,
		TX:       machine.GP4,
		RX:       machine.GP5,
	})
	go readFrames(bleUART, h.inbox, logger)

	return h
}

func (h *tinyGoHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHAL) Display() Display       { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input           { return tinyGoInput{} }
func (h *tinyGoHAL) Flash() Flash           { return h.flash }
func (h *tinyGoHAL) Clock() clockwork.Clock { return h.clock }
func (h *tinyGoHAL) Battery() Battery       { return h.battery }
func (h *tinyGoHAL) Bluetooth() Bluetooth   { return h.bt }
func (h *tinyGoHAL) Haptics() Haptics       { return h.haptics }
func (h *tinyGoHAL) Inbox() Inbox           { return h.inbox }
