package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/pkg/logger"
)

func specID(t *testing.T, b domain.BoardKind) domain.USBID {
	t.Helper()
	spec, ok := b.Spec()
	if !ok {
		t.Fatalf("no table entry for %s", b)
	}
	return spec.ID
}

func TestScanQueriesEveryBoardInOrder(t *testing.T) {
	scanner := newStubScanner(domain.BoardU2IF, domain.BoardMCP2221)
	svc := &ProbeService{Scanner: scanner, Logger: logger.New(false)}

	result := svc.Scan(context.Background())

	want := []domain.BoardKind{domain.BoardMCP2221, domain.BoardU2IF}
	if diff := cmp.Diff(want, result.Boards()); diff != "" {
		t.Fatalf("unexpected boards (-want +got):\n%s", diff)
	}
	wantCalls := []domain.USBID{
		specID(t, domain.BoardMCP2221),
		specID(t, domain.BoardFT232H),
		specID(t, domain.BoardU2IF),
	}
	if diff := cmp.Diff(wantCalls, scanner.calls); diff != "" {
		t.Fatalf("unexpected queries (-want +got):\n%s", diff)
	}
}

func TestScanTreatsErrorsAsAbsent(t *testing.T) {
	scanner := newStubScanner(domain.BoardMCP2221, domain.BoardFT232H)
	scanner.errs[specID(t, domain.BoardMCP2221)] = errors.New("LIBUSB_ERROR_IO")
	svc := &ProbeService{Scanner: scanner}

	result := svc.Scan(context.Background())

	if result.Has(domain.BoardMCP2221) {
		t.Fatal("errored query must count as absent")
	}
	if !result.Has(domain.BoardFT232H) {
		t.Fatal("FT232H should still be detected")
	}
}

func TestScanStopsQueryingAfterDeadline(t *testing.T) {
	scanner := newStubScanner(domain.BoardMCP2221)
	svc := &ProbeService{Scanner: scanner}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := svc.Scan(ctx)

	if !result.Empty() {
		t.Fatalf("expected empty result, got %v", result.Boards())
	}
	if len(scanner.calls) != 0 {
		t.Fatalf("expected no bus queries, got %d", len(scanner.calls))
	}
}

func TestScanEnumeratesOncePerScan(t *testing.T) {
	scanner := &stubSnapshotter{stubScanner: newStubScanner(domain.BoardFT232H)}
	svc := &ProbeService{Scanner: scanner}

	result := svc.Scan(context.Background())

	if scanner.snapshots != 1 {
		t.Fatalf("expected one enumeration, got %d", scanner.snapshots)
	}
	if len(scanner.calls) != 3 || !result.Has(domain.BoardFT232H) {
		t.Fatalf("unexpected result %v after %d queries", result.Boards(), len(scanner.calls))
	}
}

func TestScanTreatsEnumerationFailureAsAbsent(t *testing.T) {
	scanner := &stubSnapshotter{
		stubScanner: newStubScanner(domain.BoardMCP2221),
		err:         errors.New("libusb init: libusb: io [code -1]"),
	}
	svc := &ProbeService{Scanner: scanner, Logger: logger.New(false)}

	result := svc.Scan(context.Background())

	if !result.Empty() {
		t.Fatalf("expected empty result, got %v", result.Boards())
	}
	if len(scanner.calls) != 0 {
		t.Fatalf("no per-board queries expected, got %d", len(scanner.calls))
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		detected  domain.ProbeResult
		preferred domain.BoardKind
		want      domain.BoardKind
		wantOK    bool
	}{
		{name: "nothing detected", detected: domain.NewProbeResult(), preferred: domain.BoardU2IF},
		{name: "nothing detected unknown preference", detected: domain.NewProbeResult(), preferred: "cp2112"},
		{name: "fallback to only board", detected: domain.NewProbeResult(domain.BoardMCP2221), preferred: domain.BoardU2IF, want: domain.BoardMCP2221, wantOK: true},
		{name: "preferred wins", detected: domain.NewProbeResult(domain.BoardMCP2221, domain.BoardU2IF), preferred: domain.BoardU2IF, want: domain.BoardU2IF, wantOK: true},
		{name: "declaration order fallback", detected: domain.NewProbeResult(domain.BoardFT232H, domain.BoardMCP2221), preferred: domain.BoardU2IF, want: domain.BoardMCP2221, wantOK: true},
		{name: "ft232h before u2if", detected: domain.NewProbeResult(domain.BoardU2IF, domain.BoardFT232H), preferred: domain.BoardMCP2221, want: domain.BoardFT232H, wantOK: true},
		{name: "unknown preference falls back", detected: domain.NewProbeResult(domain.BoardU2IF), preferred: "cp2112", want: domain.BoardU2IF, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Select(tt.detected, tt.preferred)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("Select() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	first, _ := Select(domain.NewProbeResult(domain.BoardMCP2221, domain.BoardFT232H), domain.BoardU2IF)
	for i := 0; i < 100; i++ {
		got, _ := Select(domain.NewProbeResult(domain.BoardFT232H, domain.BoardMCP2221), domain.BoardU2IF)
		if got != first {
			t.Fatalf("iteration %d: got %s, want %s", i, got, first)
		}
	}
}
