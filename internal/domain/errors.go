package domain

import "errors"

var (
	// ErrUnknownBoard is returned for board identifiers outside the board table.
	ErrUnknownBoard = errors.New("unknown board")
	// ErrUnsupportedShell is returned for shells no assignment template exists for.
	ErrUnsupportedShell = errors.New("unsupported shell")
	// ErrNoBoard signals that a scan found none of the known boards.
	ErrNoBoard = errors.New("no blinka-compatible boards found")
)
