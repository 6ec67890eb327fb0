package domain

// ProbeResult is the set of boards seen on the bus during one scan.
type ProbeResult struct {
	detected map[BoardKind]bool
}

// NewProbeResult builds a result from the given boards. Unknown kinds are dropped.
func NewProbeResult(boards ...BoardKind) ProbeResult {
	detected := make(map[BoardKind]bool, len(boards))
	for _, b := range boards {
		if b.Known() {
			detected[b] = true
		}
	}
	return ProbeResult{detected: detected}
}

// Has reports whether the board was detected.
func (r ProbeResult) Has(b BoardKind) bool {
	return r.detected[b]
}

// Empty reports whether nothing was detected.
func (r ProbeResult) Empty() bool {
	return len(r.detected) == 0
}

// Len returns the number of detected boards.
func (r ProbeResult) Len() int {
	return len(r.detected)
}

// Boards returns the detected boards in declaration order.
func (r ProbeResult) Boards() []BoardKind {
	var out []BoardKind
	for _, spec := range boardTable {
		if r.detected[spec.Kind] {
			out = append(out, spec.Kind)
		}
	}
	return out
}
