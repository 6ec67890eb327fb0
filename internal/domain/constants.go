package domain

import "time"

// Scanner backends
const (
	BackendAuto   = "auto"
	BackendLibUSB = "libusb"
	BackendSysfs  = "sysfs"
	BackendIOReg  = "ioreg"
)

// Timeout constants
const (
	// DefaultProbeTimeout bounds a whole scan of the board table
	DefaultProbeTimeout = 5 * time.Second
)

// Paths and environment
const (
	// DefaultSysfsRoot is where Linux exposes enumerated USB devices
	DefaultSysfsRoot = "/sys/bus/usb/devices"
	// ConfigDirName is the per-user directory holding config.yaml
	ConfigDirName = ".cpy-helpers"
	// ConfigEnvVar overrides the config file location
	ConfigEnvVar = "CPY_HELPERS_CONFIG"
	// DebugEnvVar enables verbose logging when set to 1 or true
	DebugEnvVar = "CPY_HELPERS_DEBUG"
	// ShellEnvVar names the login shell
	ShellEnvVar = "SHELL"
)

// NoBoardWarning is printed in debug mode when a scan finds nothing.
const NoBoardWarning = "warning: No blinka-compatible boards found."
