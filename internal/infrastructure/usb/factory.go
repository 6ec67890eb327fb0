// Package usb implements the bus scanners used to detect Blinka boards.
package usb

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// ErrBackendUnavailable is returned when a backend cannot run in this build or on this OS.
var ErrBackendUnavailable = errors.New("usb backend unavailable")

// Backends lists the backend names accepted by NewScanner.
func Backends() []string {
	return []string{domain.BackendAuto, domain.BackendLibUSB, domain.BackendSysfs, domain.BackendIOReg}
}

// Available lists the concrete backends that can run in this build on goos.
func Available(goos string) []string {
	var names []string
	if libusbAvailable {
		names = append(names, domain.BackendLibUSB)
	}
	switch goos {
	case "linux":
		names = append(names, domain.BackendSysfs)
	case "darwin":
		names = append(names, domain.BackendIOReg)
	}
	return names
}

// NewScanner builds the scanner for the configured backend.
func NewScanner(settings domain.ProbeSettings, logger ports.Logger) (ports.BusScanner, error) {
	backend, err := ResolveBackend(settings.Backend, runtime.GOOS)
	if err != nil {
		return nil, err
	}
	switch backend {
	case domain.BackendLibUSB:
		return newLibUSBScanner(logger)
	case domain.BackendSysfs:
		return NewSysfsScanner(settings.SysfsRoot), nil
	case domain.BackendIOReg:
		return NewIORegScanner(), nil
	default:
		return nil, fmt.Errorf("unknown usb backend: %s", backend)
	}
}

// ResolveBackend maps "auto" (or empty) to a concrete backend for goos.
func ResolveBackend(name, goos string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized != "" && normalized != domain.BackendAuto {
		return normalized, nil
	}
	if libusbAvailable {
		return domain.BackendLibUSB, nil
	}
	switch goos {
	case "linux":
		return domain.BackendSysfs, nil
	case "darwin":
		return domain.BackendIOReg, nil
	}
	return "", fmt.Errorf("%w: no backend for %s without libusb", ErrBackendUnavailable, goos)
}
