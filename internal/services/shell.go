package services

import (
	"github.com/doeshing/cpy-helpers/internal/domain"
)

// ShellSource records where the default shell came from.
type ShellSource string

const (
	ShellFromConfig   ShellSource = "config"
	ShellFromEnv      ShellSource = "$SHELL"
	ShellFromFallback ShellSource = "fallback"
)

// DefaultShell resolves the shell used when --shell is not given: output.shell
// from the config, then the basename of $SHELL, then sh.
func DefaultShell(cfg domain.Config, getenv func(string) string) (domain.ShellKind, ShellSource) {
	if cfg.Output.Shell != "" {
		if kind, err := domain.ParseShellKind(cfg.Output.Shell); err == nil {
			return kind, ShellFromConfig
		}
	}
	if getenv != nil {
		if kind, err := domain.ParseShellKind(getenv(domain.ShellEnvVar)); err == nil {
			return kind, ShellFromEnv
		}
	}
	return domain.FallbackShell, ShellFromFallback
}

// DefaultPreferredBoard resolves the board preferred when --prefer is not given.
func DefaultPreferredBoard(cfg domain.Config) domain.BoardKind {
	if kind, err := domain.ParseBoardKind(cfg.Probe.Prefer); err == nil {
		return kind
	}
	return domain.DefaultPreferredBoard
}
