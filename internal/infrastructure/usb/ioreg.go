package usb

import (
	"context"
	"fmt"

	"howett.net/plist"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// IORegCommand dumps the macOS IO registry as a plist; replaced in tests.
var IORegCommand = func(ctx context.Context) ([]byte, error) {
	return runCommand(ctx, "ioreg", "-r", "-c", "IOUSBHostDevice", "-a", "-l")
}

// IORegScanner finds USB devices through the macOS IO registry.
type IORegScanner struct{}

// NewIORegScanner builds an IO registry scanner.
func NewIORegScanner() *IORegScanner {
	return &IORegScanner{}
}

// Name implements ports.BusScanner.
func (s *IORegScanner) Name() string {
	return domain.BackendIOReg
}

// Present implements ports.BusScanner by running ioreg once per call.
func (s *IORegScanner) Present(ctx context.Context, id domain.USBID) (bool, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return snap.Present(ctx, id)
}

// Snapshot implements ports.BusSnapshotter.
func (s *IORegScanner) Snapshot(ctx context.Context) (ports.BusScanner, error) {
	out, err := IORegCommand(ctx)
	if err != nil {
		return nil, err
	}
	var ids []domain.USBID
	if len(out) > 0 {
		var data []map[string]interface{}
		if _, err := plist.Unmarshal(out, &data); err != nil {
			return nil, fmt.Errorf("decode ioreg output: %w", err)
		}
		for _, device := range data {
			ids = collectIDs(device, ids)
		}
	}
	return newBusSnapshot(s.Name(), ids), nil
}

// collectIDs appends the entry's vendor/product pair and, recursively,
// those of its children.
func collectIDs(entry map[string]interface{}, ids []domain.USBID) []domain.USBID {
	vendor, vok := plistUint(entry["idVendor"])
	product, pok := plistUint(entry["idProduct"])
	if vok && pok && vendor <= 0xFFFF && product <= 0xFFFF {
		ids = append(ids, domain.USBID{Vendor: uint16(vendor), Product: uint16(product)})
	}
	children, _ := entry["IORegistryEntryChildren"].([]interface{})
	for _, child := range children {
		if childM, ok := child.(map[string]interface{}); ok {
			ids = collectIDs(childM, ids)
		}
	}
	return ids
}

func plistUint(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}

var (
	_ ports.BusScanner     = (*IORegScanner)(nil)
	_ ports.BusSnapshotter = (*IORegScanner)(nil)
)
