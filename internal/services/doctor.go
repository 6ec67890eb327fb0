package services

import (
	"context"
	"fmt"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// DoctorService runs environment diagnostics.
type DoctorService struct {
	ConfigProvider ports.ConfigProvider
	ConfigPath     string
	ConfigExists   bool
	Scanner        ports.BusScanner
	ScannerErr     error
	Getenv         func(string) string
}

// Run executes checks and returns a report. Unlike ProbeService.Scan, bus
// errors are reported rather than swallowed.
func (s *DoctorService) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, configCheck(s.ConfigPath, s.ConfigExists, cfg))

	shell, source := DefaultShell(cfg, s.Getenv)
	if source == ShellFromFallback {
		checks = append(checks, warn("Shell", fmt.Sprintf("$SHELL unset or unsupported, defaulting to %s", shell)))
	} else {
		checks = append(checks, ok("Shell", fmt.Sprintf("%s (from %s)", shell, source)))
	}

	if s.Scanner == nil {
		details := "scanner not initialized"
		if s.ScannerErr != nil {
			details = s.ScannerErr.Error()
		}
		checks = append(checks, fail("USB backend", details))
		return domain.HealthReport{Checks: checks}, nil
	}
	checks = append(checks, ok("USB backend", s.Scanner.Name()))

	preferred := DefaultPreferredBoard(cfg)
	scanner, snapErr := snapshot(ctx, s.Scanner)
	var found []domain.BoardKind
	for _, spec := range domain.AllBoards() {
		if snapErr != nil {
			checks = append(checks, fail(fmt.Sprintf("Board %s", spec.Kind), fmt.Sprintf("query %s failed: %v", spec.ID, snapErr)))
			continue
		}
		check, present := boardCheck(ctx, scanner, spec)
		checks = append(checks, check)
		if present {
			found = append(found, spec.Kind)
		}
	}

	if board, selected := Select(domain.NewProbeResult(found...), preferred); selected {
		checks = append(checks, ok("Selection", fmt.Sprintf("%s (preferred %s)", board.EnvVarName(), preferred)))
	} else {
		checks = append(checks, warn("Selection", "no blinka-compatible boards found"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func configCheck(path string, exists bool, cfg domain.Config) domain.HealthCheck {
	if err := ValidateConfig(cfg); err != nil {
		return fail("Config file", err.Error())
	}
	if !exists {
		return ok("Config file", fmt.Sprintf("using built-in defaults (no file at %s)", path))
	}
	return ok("Config file", fmt.Sprintf("loaded %s (format %s)", path, cfg.ConfigFormatVersion))
}

func boardCheck(ctx context.Context, scanner ports.BusScanner, spec domain.BoardSpec) (domain.HealthCheck, bool) {
	name := fmt.Sprintf("Board %s", spec.Kind)
	present, err := scanner.Present(ctx, spec.ID)
	switch {
	case err != nil:
		return fail(name, fmt.Sprintf("query %s failed: %v", spec.ID, err)), false
	case present:
		return ok(name, fmt.Sprintf("present (%s)", spec.ID)), true
	default:
		return warn(name, fmt.Sprintf("not detected (%s)", spec.ID)), false
	}
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
