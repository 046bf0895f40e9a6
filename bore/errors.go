package bore

import (
	"fmt"
	"strings"
)

// Code classifies a validation problem.
type Code string

const (
	CodeParse        Code = "parse"
	CodeNonPositive  Code = "non_positive"
	CodeOutOfRange   Code = "out_of_range"
	CodeNonMonotonic Code = "non_monotonic"
	CodeDuplicate    Code = "duplicate"
	CodeTooFewPoints Code = "too_few_points"
	CodeUnitSystem   Code = "unit_system"
)

// Field names the part of the input a validation problem refers to.
type Field string

const (
	FieldPoint    Field = "point"
	FieldPosition Field = "position"
	FieldDiameter Field = "diameter"
	FieldProfile  Field = "profile"
	FieldUnits    Field = "units"
)

// ValidationError is one recoverable input problem. Line is the 1-based
// input line (or point index) it refers to, 0 for whole-profile problems.
type ValidationError struct {
	Line    int    `json:"line,omitempty"`
	Field   Field  `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func newError(line int, field Field, code Code, msg string) ValidationError {
	return ValidationError{Line: line, Field: field, Code: code, Message: msg}
}

func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ValidationErrors carries every problem found in one input, so callers can
// report them together.
type ValidationErrors struct {
	Errors []ValidationError
}

func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "invalid bore profile"
	case 1:
		return "invalid bore profile: " + e.Errors[0].Error()
	}

	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("invalid bore profile (%d problems): %s", len(e.Errors), strings.Join(msgs, "; "))
}
