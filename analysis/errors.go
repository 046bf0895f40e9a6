package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-didge/bore"
)

// ErrInvalidOptions wraps every rejected Option combination.
var ErrInvalidOptions = errors.New("invalid analysis options")

// Field and code used when options fail inside AnalyzeRaw.
const (
	FieldOptions      bore.Field = "options"
	CodeInvalidOption bore.Code  = "invalid_option"
)

// ValidationFailedError reports every problem with the input geometry.
type ValidationFailedError struct {
	Errors []bore.ValidationError
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("bore validation failed: %s", strings.Join(msgs, "; "))
}
