package services

import (
	"errors"
	"testing"

	"github.com/doeshing/cpy-helpers/internal/domain"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.Config
		wantErr error
		invalid bool
	}{
		{name: "zero config", cfg: domain.Config{}},
		{name: "full config", cfg: domain.Config{
			Probe:  domain.ProbeSettings{Prefer: "FT232H", Backend: domain.BackendSysfs, TimeoutSeconds: 3},
			Output: domain.OutputSettings{Shell: "tcsh"},
		}},
		{name: "unknown board", cfg: domain.Config{Probe: domain.ProbeSettings{Prefer: "cp2112"}}, wantErr: domain.ErrUnknownBoard, invalid: true},
		{name: "unknown shell", cfg: domain.Config{Output: domain.OutputSettings{Shell: "zsh"}}, wantErr: domain.ErrUnsupportedShell, invalid: true},
		{name: "backend is case-insensitive", cfg: domain.Config{Probe: domain.ProbeSettings{Backend: " SYSFS "}}},
		{name: "unknown backend", cfg: domain.Config{Probe: domain.ProbeSettings{Backend: "hidapi"}}, invalid: true},
		{name: "negative timeout", cfg: domain.Config{Probe: domain.ProbeSettings{TimeoutSeconds: -1}}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if !tt.invalid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
