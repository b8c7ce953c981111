//go:build tinygo && baremetal && rp2040

package hal

import (
	"machine"

	"tinygo.org/x/drivers/sharpmem"
)

// newSharpPanel brings up the LS013B7DH05 on SPI0.
func newSharpPanel() (*sharpmem.Device, error) {
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		Frequency: 2_000_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
		Mode:      0,
		LSBFirst:  true,
	}); err != nil {
		return nil, err
	}
	pinDisplayCS.Configure(machine.PinConfig{Mode: machine.PinOutput})

	dev := sharpmem.New(spi, pinDisplayCS)
	dev.Configure(sharpmem.ConfigLS013B7DH05)
	if err := dev.Clear(); err != nil {
		return nil, err
	}
	return &dev, nil
}
