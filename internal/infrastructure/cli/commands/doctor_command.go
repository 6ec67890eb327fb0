package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cpy-helpers/internal/app"
	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/cli/helpers"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose USB access, shell detection and configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := rt.container()
			if err != nil {
				return err
			}
			return runDoctorDiagnostics(cmd, cmd.OutOrStdout(), container)
		},
	}
}

// runDoctorDiagnostics runs environment diagnostics
func runDoctorDiagnostics(cmd *cobra.Command, out io.Writer, container *app.Container) error {
	if container.DoctorService == nil {
		return errors.New(ErrDoctorServiceUnavailable)
	}

	ctx := cmd.Context()
	report, err := container.DoctorService.Run(ctx)

	// Display report even if there were errors
	displayDoctorReport(out, report, helpers.ShouldColorize(out))

	if err != nil {
		return fmt.Errorf("diagnostics completed with errors: %w", err)
	}
	if report.Failed() {
		return errors.New(ErrDoctorChecksFailed)
	}

	return nil
}

// displayDoctorReport displays the health check report
func displayDoctorReport(out io.Writer, report domain.HealthReport, colorize bool) {
	for _, check := range report.Checks {
		label := helpers.Colorize(check.Status, strings.ToUpper(string(check.Status)), colorize)
		fmt.Fprintf(out, "[%s] %s - %s\n", label, check.Name, check.Details)
	}
	fmt.Fprintln(out, report.Summary())
}
