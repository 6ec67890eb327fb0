package helpers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/cpy-helpers/internal/domain"
)

func TestCompleteBoards(t *testing.T) {
	got, _ := CompleteBoards(nil, nil, "")
	if diff := cmp.Diff([]string{"mcp2221", "ft232h", "u2if"}, got); diff != "" {
		t.Fatalf("unexpected completions (-want +got):\n%s", diff)
	}
	got, _ = CompleteBoards(nil, nil, "F")
	if diff := cmp.Diff([]string{"ft232h"}, got); diff != "" {
		t.Fatalf("unexpected completions (-want +got):\n%s", diff)
	}
}

func TestCompleteShells(t *testing.T) {
	got, _ := CompleteShells(nil, nil, "")
	if len(got) != 6 {
		t.Fatalf("expected 6 shells, got %v", got)
	}
	got, _ = CompleteShells(nil, nil, "t")
	if diff := cmp.Diff([]string{"tcsh"}, got); diff != "" {
		t.Fatalf("unexpected completions (-want +got):\n%s", diff)
	}
}

func TestColorize(t *testing.T) {
	if got := Colorize(domain.HealthOK, "OK", false); got != "OK" {
		t.Fatalf("disabled colour should return plain text, got %q", got)
	}
	got := Colorize(domain.HealthError, "ERROR", true)
	if !strings.Contains(got, "ERROR") || !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequence around text, got %q", got)
	}
}

func TestShouldColorizeNonTerminal(t *testing.T) {
	if ShouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}
