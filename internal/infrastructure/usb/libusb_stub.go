//go:build !libusb

package usb

import (
	"fmt"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

const libusbAvailable = false

func newLibUSBScanner(ports.Logger) (ports.BusScanner, error) {
	return nil, fmt.Errorf("%w: %s requires a build with -tags libusb", ErrBackendUnavailable, domain.BackendLibUSB)
}
