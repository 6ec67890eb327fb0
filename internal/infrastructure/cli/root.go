package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/cpy-helpers/internal/app"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/cli/commands"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// Getenv is read once while building the container; os.Getenv when nil.
	Getenv func(string) string
	// Scanner overrides the configured USB backend (tests).
	Scanner ports.BusScanner
	// Logger overrides the default zap logger (tests).
	Logger ports.Logger
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	rt := &commands.Runtime{}
	var (
		debug      bool
		noDebug    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "cpy-helpers",
		Short: "Helpers for CircuitPython and Blinka development",
		Long:  "cpy-helpers detects USB-attached Blinka interface boards and prints the\nenvironment variables Blinka needs to select them.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rt.Debug = debug && !noDebug
			container, err := app.BuildContainer(cmd.Context(), app.Settings{
				ConfigPath: configPath,
				Verbose:    opts.Verbose || rt.Debug,
				Getenv:     opts.Getenv,
				Scanner:    opts.Scanner,
				Logger:     opts.Logger,
			})
			if err != nil {
				return err
			}
			rt.Container = container
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	root.PersistentFlags().BoolVar(&noDebug, "no-debug", false, "Disable debug output")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.cpy-helpers/config.yaml)")
	root.SetContext(ctx)

	root.AddCommand(commands.NewProbeCommand(rt))
	root.AddCommand(commands.NewBoardsCommand(rt))
	root.AddCommand(commands.NewDoctorCommand(rt))
	root.AddCommand(commands.NewConfigCommand(rt))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
