package app

import (
	"context"
	"fmt"
	"os"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/config"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/shell"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/usb"
	"github.com/doeshing/cpy-helpers/internal/pkg/logger"
	"github.com/doeshing/cpy-helpers/internal/ports"
	"github.com/doeshing/cpy-helpers/internal/services"
)

// Settings carries process-level inputs into the container.
type Settings struct {
	ConfigPath string
	Verbose    bool
	// Getenv reads the environment; os.Getenv when nil.
	Getenv func(string) string
	// Scanner replaces the configured bus backend when set.
	Scanner ports.BusScanner
	// Logger replaces the zap logger when set.
	Logger ports.Logger
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigErr     error
	ConfigLoader  *config.FileLoader
	Logger        ports.Logger
	Scanner       ports.BusScanner
	ScannerErr    error
	ProbeService  *services.ProbeService
	Formatter     *shell.Formatter
	DoctorService *services.DoctorService

	// DefaultShell and DefaultBoard are resolved once at startup.
	DefaultShell       domain.ShellKind
	DefaultShellSource services.ShellSource
	DefaultBoard       domain.BoardKind
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, settings Settings) (*Container, error) {
	getenv := settings.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	log := settings.Logger
	if log == nil {
		log = logger.New(settings.Verbose)
	}

	cfgLoader := config.NewFileLoader(settings.ConfigPath, getenv)
	// A broken config is recorded rather than returned so doctor and
	// config validate can still report on it.
	cfg, configErr := cfgLoader.Load(ctx)
	if configErr != nil {
		cfg = config.DefaultConfig()
	} else if err := services.ValidateConfig(cfg); err != nil {
		configErr = fmt.Errorf("invalid configuration %s: %w", cfgLoader.Path(), err)
	}
	if configErr != nil {
		log.Warn("configuration rejected", map[string]interface{}{"config": cfgLoader.Path(), "error": configErr.Error()})
	}

	scanner := settings.Scanner
	var scannerErr error
	if scanner == nil {
		scanner, scannerErr = usb.NewScanner(cfg.Probe, log)
		if scannerErr != nil {
			log.Warn("usb backend unavailable", map[string]interface{}{"backend": cfg.Probe.Backend, "error": scannerErr.Error()})
		}
	}

	defaultShell, source := services.DefaultShell(cfg, getenv)
	log.Debug("startup resolved", map[string]interface{}{
		"config":       cfgLoader.Path(),
		"shell":        string(defaultShell),
		"shell_source": string(source),
		"prefer":       cfg.Probe.Prefer,
	})

	container := &Container{
		Config:             cfg,
		ConfigErr:          configErr,
		ConfigLoader:       cfgLoader,
		Logger:             log,
		Scanner:            scanner,
		ScannerErr:         scannerErr,
		Formatter:          shell.NewFormatter(),
		DefaultShell:       defaultShell,
		DefaultShellSource: source,
		DefaultBoard:       services.DefaultPreferredBoard(cfg),
		DoctorService: &services.DoctorService{
			ConfigProvider: cfgLoader,
			ConfigPath:     cfgLoader.Path(),
			ConfigExists:   cfgLoader.Exists(),
			Scanner:        scanner,
			ScannerErr:     scannerErr,
			Getenv:         getenv,
		},
	}
	if scanner != nil {
		container.ProbeService = &services.ProbeService{Scanner: scanner, Logger: log}
	}
	return container, nil
}
