package face

import "fmt"

// ConnIcon selects the Bluetooth status artwork.
type ConnIcon uint8

const (
	ConnDisconnected ConnIcon = iota
	ConnConnected
)

func (c ConnIcon) String() string {
	switch c {
	case ConnDisconnected:
		return "disconnected"
	case ConnConnected:
		return "connected"
	default:
		return fmt.Sprintf("ConnIcon(%d)", uint8(c))
	}
}

// SelectConnectivityIcon maps the link state to its icon.
//
// Alerting on a disconnect edge is the caller's job.
func SelectConnectivityIcon(connected bool) ConnIcon {
	if connected {
		return ConnConnected
	}
	return ConnDisconnected
}
