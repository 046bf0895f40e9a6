package analysis

import (
	"github.com/RyanBlaney/sonido-didge/bore"
)

// OutcomeKind tags which field of an Outcome is meaningful.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeValidationFailed
	OutcomeGeometryError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeGeometryError:
		return "geometry_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of AnalyzeRaw: exactly one of Result (OK), Errors
// (ValidationFailed) or Reason (GeometryError) is set. Adjustments lists
// any unit rescaling the builder applied, whatever the kind.
type Outcome struct {
	Kind        OutcomeKind            `json:"kind"`
	Result      *AnalysisResult        `json:"result,omitempty"`
	Errors      []bore.ValidationError `json:"errors,omitempty"`
	Reason      string                 `json:"reason,omitempty"`
	Adjustments []bore.Adjustment      `json:"adjustments,omitempty"`
}

// OK reports whether the analysis succeeded.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeOK
}

// MarshalText encodes the kind by name.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
