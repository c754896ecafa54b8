package exitcode

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// Wrapf attaches an exit code to an error, so the code can travel a Go error
// chain without being lost to intermediate wrapping.
func (x ExitCode) Wrapf(msg string, args ...interface{}) error {
	return &codedError{x, xerrors.Errorf(msg, args...)}
}

type codedError struct {
	code  ExitCode
	cause error
}

func (e *codedError) Error() string {
	return fmt.Sprintf("%s (exit code %d)", e.cause, e.code)
}

// Is matches any error carrying the same exit code. The cause chain is
// deliberately not exposed for unwrapping: an outer code shadows any code
// attached deeper in the chain.
func (e *codedError) Is(target error) bool {
	code, ok := target.(ExitCode)
	return ok && code == e.code
}

// Unwrap returns the exit code attached closest to the head of err's chain,
// or fallback if the chain carries no code.
func Unwrap(err error, fallback ExitCode) ExitCode {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return fallback
}
