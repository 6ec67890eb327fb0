package shell

import (
	"fmt"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// Formatter renders environment assignments for the supported shells.
type Formatter struct{}

// NewFormatter builds a shell formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Render returns the statement that exports name=value in the given shell.
func (f *Formatter) Render(name, value string, shell domain.ShellKind) (string, error) {
	switch shell {
	case domain.ShellSh, domain.ShellKsh:
		return fmt.Sprintf("%s=%s; export %s", name, value, name), nil
	case domain.ShellCsh, domain.ShellTcsh:
		return fmt.Sprintf("setenv %s=%s", name, value), nil
	case domain.ShellBash:
		return fmt.Sprintf("export %s=%s", name, value), nil
	case domain.ShellFish:
		return fmt.Sprintf("set -gx %s %s", name, value), nil
	default:
		return "", fmt.Errorf("%w '%s'", domain.ErrUnsupportedShell, shell)
	}
}

// RenderAssignment renders a prepared assignment value.
func (f *Formatter) RenderAssignment(a domain.EnvAssignment) (string, error) {
	return f.Render(a.Name, a.Value, a.Shell)
}

var _ ports.EnvFormatter = (*Formatter)(nil)
