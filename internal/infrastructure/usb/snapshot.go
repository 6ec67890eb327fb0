package usb

import (
	"context"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// busSnapshot answers Present from one enumeration of the bus.
type busSnapshot struct {
	name string
	ids  map[domain.USBID]struct{}
}

func newBusSnapshot(name string, ids []domain.USBID) *busSnapshot {
	set := make(map[domain.USBID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &busSnapshot{name: name, ids: set}
}

// Name implements ports.BusScanner.
func (s *busSnapshot) Name() string {
	return s.name
}

// Present implements ports.BusScanner.
func (s *busSnapshot) Present(ctx context.Context, id domain.USBID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := s.ids[id]
	return ok, nil
}

var _ ports.BusScanner = (*busSnapshot)(nil)
