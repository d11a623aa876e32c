package code

import (
	"fmt"
	"github.com/cockroachdb/errors"
)

// FormatError reports a malformed template: a bad argument index, an argument whose kind does
// not match its token, an illegal identifier, or a positional token following an indexed one.
// It is fatal to the assembly that triggered it.
type FormatError struct {
	Format string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Format, e.Reason)
}

func formatErrorf(format, reason string, args ...interface{}) error {
	return errors.WithStack(&FormatError{Format: format, Reason: fmt.Sprintf(reason, args...)})
}

// NewFormatError returns a FormatError for errors detected while emitting a block, such as an
// unbalanced statement marker.
func NewFormatError(format, reason string, args ...interface{}) error {
	return formatErrorf(format, reason, args...)
}

// IsFormatError reports whether err is, or wraps, a FormatError.
func IsFormatError(err error) bool {
	var target *FormatError
	return errors.As(err, &target)
}
