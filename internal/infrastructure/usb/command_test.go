package usb

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestRunCommand(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out, err := runCommand(context.Background(), "sh", "-c", "printf ok")
	if err != nil {
		t.Fatalf("runCommand error: %v", err)
	}
	if string(out) != "ok" {
		t.Fatalf("got %q", out)
	}

	_, err = runCommand(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("stderr not included in error: %v", err)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit code 3, got %v", err)
	}
}

func TestRunCommandHonoursContext(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runCommand(ctx, "sh", "-c", "sleep 5"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
