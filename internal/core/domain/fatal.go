package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FatalError is the unrecoverable error variant. Components return it instead of
// exiting; only the top-level driver converts it into a process exit.
type FatalError struct {
	msg   string
	cause error
}

// Die formats a fatal message using fmt verbs and returns it as a *FatalError.
// The returned error matches ErrFatal under errors.Is.
func Die(format string, args ...any) error {
	return &FatalError{
		msg: strings.TrimSpace(fmt.Sprintf(format, args...)),
	}
}

// DieWith is Die with an underlying cause attached for errors.Is/As inspection.
// The cause does not appear in the message.
func DieWith(cause error, format string, args ...any) error {
	return &FatalError{
		msg:   strings.TrimSpace(fmt.Sprintf(format, args...)),
		cause: cause,
	}
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	return e.msg
}

// Message returns the formatted fatal message.
func (e *FatalError) Message() string {
	return e.msg
}

// Unwrap returns the cause, if any.
func (e *FatalError) Unwrap() error {
	return e.cause
}

// Is reports ErrFatal as matching every FatalError.
func (e *FatalError) Is(target error) bool {
	return target == ErrFatal
}

// AsFatal reports whether err carries a FatalError anywhere in its chain.
func AsFatal(err error) (*FatalError, bool) {
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
