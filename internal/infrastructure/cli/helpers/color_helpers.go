package helpers

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/doeshing/cpy-helpers/internal/domain"
)

// ShouldColorize reports whether out is a terminal that should receive ANSI colours.
// NO_COLOR is honoured.
func ShouldColorize(out io.Writer) bool {
	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Colorize paints text according to the health status
func Colorize(status domain.HealthStatus, text string, enabled bool) string {
	c := color.New(statusColor(status))
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func statusColor(status domain.HealthStatus) color.Attribute {
	switch status {
	case domain.HealthOK:
		return color.FgGreen
	case domain.HealthWarn:
		return color.FgYellow
	default:
		return color.FgRed
	}
}
