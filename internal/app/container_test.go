package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/infrastructure/usb"
	"github.com/doeshing/cpy-helpers/internal/pkg/logger"
	"github.com/doeshing/cpy-helpers/internal/services"
)

func TestBuildContainerResolvesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	env := map[string]string{"SHELL": "/bin/tcsh"}

	container, err := BuildContainer(context.Background(), Settings{
		Getenv: func(key string) string { return env[key] },
		Logger: logger.New(false),
	})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if container.DefaultShell != domain.ShellTcsh || container.DefaultShellSource != services.ShellFromEnv {
		t.Fatalf("unexpected shell resolution: %s from %s", container.DefaultShell, container.DefaultShellSource)
	}
	if container.DefaultBoard != domain.BoardU2IF {
		t.Fatalf("unexpected default board %s", container.DefaultBoard)
	}
	if container.Formatter == nil || container.DoctorService == nil {
		t.Fatal("container is missing services")
	}
}

func TestBuildContainerUsesConfiguredBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := "probe:\n  backend: sysfs\n  sysfs_root: " + dir + "\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	container, err := BuildContainer(context.Background(), Settings{
		ConfigPath: path,
		Getenv:     func(string) string { return "" },
		Logger:     logger.New(false),
	})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	scanner, ok := container.Scanner.(*usb.SysfsScanner)
	if !ok {
		t.Fatalf("expected sysfs scanner, got %T", container.Scanner)
	}
	if scanner.Root() != dir {
		t.Fatalf("got root %s, want %s", scanner.Root(), dir)
	}
	if container.ProbeService == nil {
		t.Fatal("probe service should be wired")
	}
	if !container.DoctorService.ConfigExists {
		t.Fatal("doctor should know the config file exists")
	}
}

func TestBuildContainerRecordsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  shell: zsh\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	container, err := BuildContainer(context.Background(), Settings{ConfigPath: path, Logger: logger.New(false)})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if !errors.Is(container.ConfigErr, domain.ErrUnsupportedShell) {
		t.Fatalf("expected recorded shell error, got %v", container.ConfigErr)
	}
	if container.DoctorService == nil {
		t.Fatal("doctor must stay available to report the config")
	}
}

func TestBuildContainerFallsBackOnUnparsableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("probe: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	container, err := BuildContainer(context.Background(), Settings{ConfigPath: path, Logger: logger.New(false)})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if container.ConfigErr == nil {
		t.Fatal("expected parse error to be recorded")
	}
	if container.DefaultBoard != domain.BoardU2IF {
		t.Fatalf("defaults should apply, got %s", container.DefaultBoard)
	}
}
