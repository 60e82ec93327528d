package logbook

import (
	"errors"
	"fmt"
)

// ErrFieldCount is matched by every ParseError.
var ErrFieldCount = errors.New("wrong number of fields")

// ParseError reports a log line that did not split into FieldCount fields.
type ParseError struct {
	Got int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: got %d, want %d", ErrFieldCount, e.Got, FieldCount)
}

// Is lets errors.Is(err, ErrFieldCount) match.
func (e *ParseError) Is(target error) bool {
	return target == ErrFieldCount
}

// LineError annotates a failure with the 1-based line it occurred on.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%v on line %d", e.Err, e.Line)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when a selection names an id the log does not
// contain. Line is zero when the id did not come from a file.
type ValidationError struct {
	ID   string
	Line int
}

func (e *ValidationError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("unknown log id %q", e.ID)
	}
	return fmt.Sprintf("unknown log id %q on line %d", e.ID, e.Line)
}
