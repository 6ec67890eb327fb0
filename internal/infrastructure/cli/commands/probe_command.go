package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/cli/helpers"
	"github.com/doeshing/cpy-helpers/internal/services"
)

type probeOptions struct {
	prefer  string
	shell   string
	timeout time.Duration
	strict  bool

	board     domain.BoardKind
	shellKind domain.ShellKind
}

// NewProbeCommand creates the probe command
func NewProbeCommand(rt *Runtime) *cobra.Command {
	opts := &probeOptions{}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Detect an attached Blinka board and print its environment variable",
		Long: "Probe the USB bus for an MCP2221, FT232H or u2if board and print the\n" +
			"environment assignment that selects it, e.g. eval \"$(cpy-helpers probe)\".",
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd, rt)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, rt, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.prefer, FlagPrefer, "p", "", "Preferred board if several are found (mcp2221|u2if|ft232h, default u2if)")
	cmd.Flags().StringVarP(&opts.shell, FlagShell, "s", "", "Shell syntax for the output (sh|ksh|bash|csh|tcsh|fish, default from $SHELL)")
	cmd.Flags().DurationVar(&opts.timeout, FlagTimeout, 0, "Upper bound for the USB scan (default from config)")
	cmd.Flags().BoolVar(&opts.strict, FlagStrict, false, "Exit non-zero when no board is found")

	_ = cmd.RegisterFlagCompletionFunc(FlagPrefer, helpers.CompleteBoards)
	_ = cmd.RegisterFlagCompletionFunc(FlagShell, helpers.CompleteShells)

	return cmd
}

// resolve validates the flags against the board and shell tables, falling
// back to the defaults resolved at startup.
func (o *probeOptions) resolve(cmd *cobra.Command, rt *Runtime) error {
	container, err := rt.validContainer()
	if err != nil {
		return err
	}

	o.board = container.DefaultBoard
	if cmd.Flags().Changed(FlagPrefer) {
		if o.board, err = domain.ParseBoardKind(o.prefer); err != nil {
			return fmt.Errorf("invalid --%s: %w", FlagPrefer, err)
		}
	}

	o.shellKind = container.DefaultShell
	if cmd.Flags().Changed(FlagShell) {
		if o.shellKind, err = domain.ParseShellKind(o.shell); err != nil {
			return fmt.Errorf("invalid --%s: %w", FlagShell, err)
		}
	}

	if o.timeout <= 0 {
		o.timeout = container.Config.Probe.Timeout()
	}
	return nil
}

// runProbe scans the bus, picks a board and prints its assignment
func runProbe(cmd *cobra.Command, rt *Runtime, opts *probeOptions) error {
	container, err := rt.validContainer()
	if err != nil {
		return err
	}
	if container.ProbeService == nil {
		return fmt.Errorf("usb backend: %w", container.ScannerErr)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	detected := container.ProbeService.Scan(ctx)
	board, ok := services.Select(detected, opts.board)
	if !ok {
		if rt.Debug {
			fmt.Fprintln(cmd.ErrOrStderr(), domain.NoBoardWarning)
		}
		if opts.strict {
			return domain.ErrNoBoard
		}
		return nil
	}

	line, err := container.Formatter.RenderAssignment(board.Assignment(opts.shellKind))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
