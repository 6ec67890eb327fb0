package services

import (
	"context"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

type stubScanner struct {
	present map[domain.USBID]bool
	errs    map[domain.USBID]error
	calls   []domain.USBID
}

func newStubScanner(boards ...domain.BoardKind) *stubScanner {
	s := &stubScanner{present: map[domain.USBID]bool{}, errs: map[domain.USBID]error{}}
	for _, b := range boards {
		spec, _ := b.Spec()
		s.present[spec.ID] = true
	}
	return s
}

func (s *stubScanner) Name() string { return "stub" }

func (s *stubScanner) Present(_ context.Context, id domain.USBID) (bool, error) {
	s.calls = append(s.calls, id)
	if err := s.errs[id]; err != nil {
		return false, err
	}
	return s.present[id], nil
}

// stubSnapshotter enumerates the bus in one pass, like the libusb and ioreg backends.
type stubSnapshotter struct {
	*stubScanner
	snapshots int
	err       error
}

func (s *stubSnapshotter) Snapshot(context.Context) (ports.BusScanner, error) {
	s.snapshots++
	if s.err != nil {
		return nil, s.err
	}
	return s.stubScanner, nil
}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}
