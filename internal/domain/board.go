// Package domain defines the core value types for cpy-helpers.
//
// Everything here is a plain value: boards, shells, probe results and the
// environment assignment rendered for the caller's shell. Nothing in this
// package touches the USB bus or the process environment.
package domain

import (
	"fmt"
	"strings"
)

// BoardKind identifies one of the supported Blinka interface boards.
type BoardKind string

const (
	BoardMCP2221 BoardKind = "mcp2221"
	BoardFT232H  BoardKind = "ft232h"
	BoardU2IF    BoardKind = "u2if"
)

// DefaultPreferredBoard is used when neither a flag nor the config names one.
const DefaultPreferredBoard = BoardU2IF

// EnvVarPrefix prefixes every variable emitted for a detected board.
const EnvVarPrefix = "BLINKA_"

// EnvVarValue is the value assigned to the board variable.
const EnvVarValue = "1"

// USBID is the vendor/product pair a USB device reports.
type USBID struct {
	Vendor  uint16
	Product uint16
}

// String renders the pair the way lsusb does, e.g. 04d8:00dd.
func (id USBID) String() string {
	return fmt.Sprintf("%04x:%04x", id.Vendor, id.Product)
}

// BoardSpec ties a board to the identifiers it enumerates with.
type BoardSpec struct {
	Kind        BoardKind
	ID          USBID
	Description string
}

// boardTable is kept in declaration order; selection fallbacks depend on it.
var boardTable = []BoardSpec{
	{Kind: BoardMCP2221, ID: USBID{Vendor: 0x04D8, Product: 0x00DD}, Description: "Microchip MCP2221 USB-I2C/UART bridge"},
	{Kind: BoardFT232H, ID: USBID{Vendor: 0x0403, Product: 0x6014}, Description: "FTDI FT232H USB-MPSSE bridge"},
	{Kind: BoardU2IF, ID: USBID{Vendor: 0xCAFE, Product: 0x4005}, Description: "Raspberry Pi Pico running u2if"},
}

// AllBoards returns the known boards in declaration order.
func AllBoards() []BoardSpec {
	out := make([]BoardSpec, len(boardTable))
	copy(out, boardTable)
	return out
}

// BoardKinds returns the identifiers of the known boards in declaration order.
func BoardKinds() []BoardKind {
	kinds := make([]BoardKind, 0, len(boardTable))
	for _, spec := range boardTable {
		kinds = append(kinds, spec.Kind)
	}
	return kinds
}

// ParseBoardKind converts a case-insensitive identifier into a BoardKind.
func ParseBoardKind(value string) (BoardKind, error) {
	normalized := BoardKind(strings.ToLower(strings.TrimSpace(value)))
	for _, spec := range boardTable {
		if spec.Kind == normalized {
			return spec.Kind, nil
		}
	}
	return "", fmt.Errorf("%w '%s'", ErrUnknownBoard, strings.ToLower(strings.TrimSpace(value)))
}

// Spec looks up the table entry for the board.
func (b BoardKind) Spec() (BoardSpec, bool) {
	for _, spec := range boardTable {
		if spec.Kind == b {
			return spec, true
		}
	}
	return BoardSpec{}, false
}

// Known reports whether b is one of the supported boards.
func (b BoardKind) Known() bool {
	_, ok := b.Spec()
	return ok
}

// EnvVarName returns the variable Blinka inspects for this board, e.g. BLINKA_MCP2221.
func (b BoardKind) EnvVarName() string {
	return EnvVarPrefix + strings.ToUpper(string(b))
}

// Assignment builds the environment assignment announcing this board.
func (b BoardKind) Assignment(shell ShellKind) EnvAssignment {
	return EnvAssignment{Name: b.EnvVarName(), Value: EnvVarValue, Shell: shell}
}
