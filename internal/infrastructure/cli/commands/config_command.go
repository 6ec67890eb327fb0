package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/cpy-helpers/internal/app"
	configinfra "github.com/doeshing/cpy-helpers/internal/infrastructure/config"
	"github.com/doeshing/cpy-helpers/internal/services"
)

// NewConfigCommand creates the read-only config command with its subcommands
func NewConfigCommand(rt *Runtime) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect cpy-helpers configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(rt, func(container *app.Container) error {
				return showConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
			})
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContainer(rt, func(container *app.Container) error {
					return showConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
				})
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContainer(rt, func(container *app.Container) error {
					loader, err := configLoader(container)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate configuration file",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContainer(rt, func(container *app.Container) error {
					return validateConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
				})
			},
		},
		&cobra.Command{
			Use:   "diff",
			Short: "Show diff versus default configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withContainer(rt, func(container *app.Container) error {
					return showConfigurationDiff(cmd.Context(), cmd.OutOrStdout(), container)
				})
			},
		},
	)

	return configCmd
}

func withContainer(rt *Runtime, fn func(*app.Container) error) error {
	container, err := rt.container()
	if err != nil {
		return err
	}
	return fn(container)
}

func configLoader(container *app.Container) (*configinfra.FileLoader, error) {
	if container.ConfigLoader == nil {
		return nil, errors.New(ErrConfigLoaderUnavailable)
	}
	return container.ConfigLoader, nil
}

func showConfiguration(ctx context.Context, out io.Writer, container *app.Container) error {
	loader, err := configLoader(container)
	if err != nil {
		return err
	}
	cfg, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	fmt.Fprint(out, string(data))
	return nil
}

func validateConfiguration(ctx context.Context, out io.Writer, container *app.Container) error {
	loader, err := configLoader(container)
	if err != nil {
		return err
	}
	cfg, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := services.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Fprintln(out, MsgConfigurationValid)
	return nil
}

func showConfigurationDiff(ctx context.Context, out io.Writer, container *app.Container) error {
	loader, err := configLoader(container)
	if err != nil {
		return err
	}
	currentConfig, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load current configuration: %w", err)
	}

	diff := cmp.Diff(configinfra.DefaultConfig(), currentConfig)
	if diff == "" {
		fmt.Fprintln(out, MsgNoDifferencesFromDefault)
		return nil
	}

	fmt.Fprintln(out, diff)
	return nil
}
