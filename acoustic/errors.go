package acoustic

import "fmt"

// GeometryError reports a degenerate profile reaching the solver. The
// builder's validation normally makes this unreachable, so it signals a
// broken caller contract rather than bad user input.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid bore geometry: %s", e.Reason)
}

func geometryErrorf(format string, args ...any) error {
	return &GeometryError{Reason: fmt.Sprintf(format, args...)}
}
