package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ShellKind enumerates the shells an assignment can be rendered for.
type ShellKind string

const (
	ShellSh   ShellKind = "sh"
	ShellKsh  ShellKind = "ksh"
	ShellBash ShellKind = "bash"
	ShellCsh  ShellKind = "csh"
	ShellTcsh ShellKind = "tcsh"
	ShellFish ShellKind = "fish"
)

// FallbackShell is used when $SHELL is unset or names a shell we cannot render for.
const FallbackShell = ShellSh

// ShellKinds returns every supported shell.
func ShellKinds() []ShellKind {
	return []ShellKind{ShellSh, ShellKsh, ShellBash, ShellCsh, ShellTcsh, ShellFish}
}

// ParseShellKind converts a shell name or path (e.g. "/bin/BASH") into a ShellKind.
func ParseShellKind(value string) (ShellKind, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty shell name", ErrUnsupportedShell)
	}
	normalized := ShellKind(strings.ToLower(filepath.Base(trimmed)))
	for _, kind := range ShellKinds() {
		if kind == normalized {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w '%s'", ErrUnsupportedShell, normalized)
}

// EnvAssignment is a single environment variable assignment for a given shell.
type EnvAssignment struct {
	Name  string
	Value string
	Shell ShellKind
}
