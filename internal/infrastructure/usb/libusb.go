//go:build libusb

package usb

import (
	"context"
	"fmt"

	"github.com/google/gousb"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

const libusbAvailable = true

// newContext opens a libusb context; replaced in tests. gousb panics when
// libusb_init fails, e.g. on hosts without usbfs.
var newContext = gousb.NewContext

// LibUSBScanner enumerates the bus through libusb.
type LibUSBScanner struct {
	logger ports.Logger
}

func newLibUSBScanner(logger ports.Logger) (ports.BusScanner, error) {
	return &LibUSBScanner{logger: logger}, nil
}

// Name implements ports.BusScanner.
func (s *LibUSBScanner) Name() string {
	return domain.BackendLibUSB
}

// Present implements ports.BusScanner with a full enumeration per call.
// Callers checking several IDs should take a Snapshot instead.
func (s *LibUSBScanner) Present(ctx context.Context, id domain.USBID) (bool, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return snap.Present(ctx, id)
}

// Snapshot implements ports.BusSnapshotter.
func (s *LibUSBScanner) Snapshot(ctx context.Context) (ports.BusScanner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids, err := s.enumerate()
	if err != nil {
		return nil, err
	}
	return newBusSnapshot(s.Name(), ids), nil
}

// enumerate walks the device descriptors without opening any device, so it
// does not need access rights to the device nodes.
func (s *LibUSBScanner) enumerate() (ids []domain.USBID, err error) {
	defer func() {
		if r := recover(); r != nil {
			ids, err = nil, fmt.Errorf("libusb init: %v", r)
		}
	}()

	usbctx := newContext()
	defer usbctx.Close()

	devs, openErr := usbctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		ids = append(ids, domain.USBID{Vendor: uint16(desc.Vendor), Product: uint16(desc.Product)})
		// Returning false keeps the device closed.
		return false
	})
	for _, d := range devs {
		d.Close()
	}
	if openErr != nil {
		if len(ids) == 0 {
			return nil, fmt.Errorf("libusb enumerate: %w", openErr)
		}
		// Errors on unrelated devices are common (LIBUSB_ERROR_ACCESS).
		s.logger.Debug("libusb enumeration reported errors", map[string]interface{}{"devices": len(ids), "error": openErr.Error()})
	}
	return ids, nil
}

var (
	_ ports.BusScanner     = (*LibUSBScanner)(nil)
	_ ports.BusSnapshotter = (*LibUSBScanner)(nil)
)
