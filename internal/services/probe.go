package services

import (
	"context"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// ProbeService looks for the known boards on the USB bus.
type ProbeService struct {
	Scanner ports.BusScanner
	Logger  ports.Logger
}

// Scan queries the bus once per known board, in declaration order.
// Scanner errors and an expired context both count as "not present".
func (s *ProbeService) Scan(ctx context.Context) domain.ProbeResult {
	scanner, err := snapshot(ctx, s.Scanner)
	if err != nil {
		s.logger().Debug("bus enumeration failed, treating all boards as absent", map[string]interface{}{
			"backend": s.Scanner.Name(),
			"error":   err.Error(),
		})
		return domain.NewProbeResult()
	}

	var found []domain.BoardKind
	for _, spec := range domain.AllBoards() {
		if s.present(ctx, scanner, spec) {
			found = append(found, spec.Kind)
		}
	}
	return domain.NewProbeResult(found...)
}

func (s *ProbeService) present(ctx context.Context, scanner ports.BusScanner, spec domain.BoardSpec) bool {
	fields := map[string]interface{}{
		"board":   string(spec.Kind),
		"id":      spec.ID.String(),
		"backend": scanner.Name(),
	}
	if err := ctx.Err(); err != nil {
		s.logger().Debug("probe skipped", withError(fields, err))
		return false
	}
	ok, err := scanner.Present(ctx, spec.ID)
	if err != nil {
		s.logger().Debug("probe failed, treating as absent", withError(fields, err))
		return false
	}
	fields["present"] = ok
	s.logger().Debug("probe finished", fields)
	return ok
}

// snapshot enumerates the bus once when the scanner supports it, so the
// per-board queries that follow do not repeat the enumeration.
func snapshot(ctx context.Context, scanner ports.BusScanner) (ports.BusScanner, error) {
	snapshotter, ok := scanner.(ports.BusSnapshotter)
	if !ok {
		return scanner, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snapshotter.Snapshot(ctx)
}

func (s *ProbeService) logger() ports.Logger {
	if s.Logger == nil {
		return nopLogger{}
	}
	return s.Logger
}

// Select picks the board to announce: the preferred one when detected,
// otherwise the first detected board in declaration order.
func Select(detected domain.ProbeResult, preferred domain.BoardKind) (domain.BoardKind, bool) {
	if detected.Has(preferred) {
		return preferred, true
	}
	boards := detected.Boards()
	if len(boards) == 0 {
		return "", false
	}
	return boards[0], true
}

func withError(fields map[string]interface{}, err error) map[string]interface{} {
	fields["error"] = err.Error()
	return fields
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
