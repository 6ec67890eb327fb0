package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/doeshing/cpy-helpers/internal/app"
	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/cli/helpers"
)

// NewBoardsCommand creates the boards command
func NewBoardsCommand(rt *Runtime) *cobra.Command {
	var detectedOnly bool

	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List supported boards and whether they are attached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := rt.validContainer()
			if err != nil {
				return err
			}
			return listBoards(cmd.Context(), cmd.OutOrStdout(), container, detectedOnly)
		},
	}

	cmd.Flags().BoolVar(&detectedOnly, FlagDetected, false, "Only list boards currently attached")

	return cmd
}

// listBoards renders one row per board in declaration order
func listBoards(ctx context.Context, out io.Writer, container *app.Container, detectedOnly bool) error {
	if container.ProbeService == nil {
		return fmt.Errorf("usb backend: %w", container.ScannerErr)
	}

	ctx, cancel := context.WithTimeout(ctx, container.Config.Probe.Timeout())
	defer cancel()
	detected := container.ProbeService.Scan(ctx)

	colorize := helpers.ShouldColorize(out)
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Board", "USB ID", "Variable", "Status", "Description"})
	for _, spec := range domain.AllBoards() {
		present := detected.Has(spec.Kind)
		if detectedOnly && !present {
			continue
		}
		status := domain.HealthWarn
		label := "absent"
		if present {
			status = domain.HealthOK
			label = "present"
		}
		t.AppendRow(table.Row{
			string(spec.Kind),
			spec.ID.String(),
			spec.Kind.EnvVarName(),
			helpers.Colorize(status, label, colorize),
			spec.Description,
		})
	}
	fmt.Fprintln(out, t.Render())
	return nil
}
