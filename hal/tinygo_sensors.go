//go:build tinygo && baremetal && rp2040

package hal

import (
	"machine"
	"time"
)

const (
	batteryPollInterval = 10 * time.Second
	linkPollInterval    = 200 * time.Millisecond
)

type batteryMonitor struct {
	adc  machine.ADC
	vbus machine.Pin
}

func newBatteryMonitor(adcPin, vbus machine.Pin) *batteryMonitor {
	machine.InitADC()
	adc := machine.ADC{Pin: adcPin}
	adc.Configure(machine.ADCConfig{})
	vbus.Configure(machine.PinConfig{Mode: machine.PinInput})
	return &batteryMonitor{adc: adc, vbus: vbus}
}

func (m *batteryMonitor) sample() BatteryState {
	// VSYS is divided by 3 before the 3.3 V ADC.
	mv := int(m.adc.Get()) * 3300 * 3 / 0xFFFF
	return BatteryState{
		Percent:  percentFromMillivolts(mv),
		Charging: m.vbus.Get(),
	}
}

func (m *batteryMonitor) run(s batterySensor) {
	for {
		time.Sleep(batteryPollInterval)
		s.Set(m.sample())
	}
}

type linkMonitor struct {
	pin machine.Pin
}

func newLinkMonitor(pin machine.Pin) *linkMonitor {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	return &linkMonitor{pin: pin}
}

// sample reads the BLE module's STATE pin, high while a central is connected.
func (m *linkMonitor) sample() bool { return m.pin.Get() }

func (m *linkMonitor) run(s linkSensor) {
	for {
		time.Sleep(linkPollInterval)
		s.Set(m.sample())
	}
}
