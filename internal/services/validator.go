package services

import (
	"fmt"
	"strings"

	"github.com/doeshing/cpy-helpers/internal/domain"
)

// ValidateConfig ensures config values are in range before they are used as defaults.
func ValidateConfig(cfg domain.Config) error {
	if cfg.Probe.Prefer != "" {
		if _, err := domain.ParseBoardKind(cfg.Probe.Prefer); err != nil {
			return fmt.Errorf("probe.prefer: %w", err)
		}
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Probe.Backend)) {
	case "", domain.BackendAuto, domain.BackendLibUSB, domain.BackendSysfs, domain.BackendIOReg:
	default:
		return fmt.Errorf("probe.backend must be auto|libusb|sysfs|ioreg, got %s", cfg.Probe.Backend)
	}
	if cfg.Probe.TimeoutSeconds < 0 {
		return fmt.Errorf("probe.timeout must be >= 0, got %d", cfg.Probe.TimeoutSeconds)
	}
	if cfg.Output.Shell != "" {
		if _, err := domain.ParseShellKind(cfg.Output.Shell); err != nil {
			return fmt.Errorf("output.shell: %w", err)
		}
	}
	return nil
}
