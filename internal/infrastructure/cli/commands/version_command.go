package commands

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cpy-helpers/internal/infrastructure/usb"
	"github.com/doeshing/cpy-helpers/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show cpy-helpers version and the USB backends compiled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)
				return nil
			}
			return displayVersionInformation(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&short, FlagShort, false, "Print the version number only")
	return cmd
}

func displayVersionInformation(out io.Writer) error {
	fmt.Fprintf(out, "cpy-helpers version %s\n", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}

	backends := usb.Available(runtime.GOOS)
	if len(backends) == 0 {
		backends = []string{"none"}
	}
	fmt.Fprintf(out, "USB backends: %s (%s/%s)\n", strings.Join(backends, ", "), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	return nil
}
