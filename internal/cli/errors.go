package cli

import (
	"errors"
	"fmt"

	"github.com/faizmokh/astrolog/internal/logbook"
)

// Process exit codes, one per error kind.
const (
	ExitOK         = 0
	ExitIO         = 1
	ExitArgument   = 2
	ExitParse      = 3
	ExitValidation = 4
)

// ArgumentError reports a missing, unknown or malformed command-line argument.
type ArgumentError struct {
	Err   error
	Usage string
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func argumentError(usage string, format string, args ...any) error {
	return &ArgumentError{Err: fmt.Errorf(format, args...), Usage: usage}
}

// ExitCode maps err to the process exit code for its kind.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		argErr        *ArgumentError
		validationErr *logbook.ValidationError
	)
	switch {
	case errors.As(err, &argErr):
		return ExitArgument
	case errors.Is(err, logbook.ErrFieldCount):
		return ExitParse
	case errors.As(err, &validationErr):
		return ExitValidation
	default:
		return ExitIO
	}
}
