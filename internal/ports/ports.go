// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The probe and selection logic only ever talks to the
// USB bus, the configuration file and the logger through these interfaces, so the
// services can be exercised in tests without any hardware attached.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., BusScanner, ConfigProvider)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/cpy-helpers/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.cpy-helpers/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// BusScanner answers whether a device with the given vendor/product pair is
// currently attached. Each backend wraps one way of enumerating the host's USB bus
// (libusb, Linux sysfs, the macOS IO registry).
type BusScanner interface {
	Name() string
	Present(ctx context.Context, id domain.USBID) (bool, error)
}

// BusSnapshotter is implemented by scanners whose only way to answer Present is
// to enumerate the whole bus. Snapshot enumerates once and returns a scanner that
// answers every later query from that listing.
type BusSnapshotter interface {
	Snapshot(ctx context.Context) (BusScanner, error)
}

// EnvFormatter renders an environment assignment in a shell's own syntax.
type EnvFormatter interface {
	Render(name, value string, shell domain.ShellKind) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
