package category

import (
	"errors"
	"fmt"
)

// ErrLawViolation is matched by every error raised when a caller breaks a
// categorical contract: composing non-composable arrows, transporting a field
// along an arrow that does not start at the field, or indexing outside a cover.
var ErrLawViolation = errors.New("law violation")

// LawViolation reports a broken contract. Law violations are programmer errors
// and reproduce identically on retry.
type LawViolation struct {
	// Op names the operation that rejected its input (e.g. "compose").
	Op string

	// Reason describes the mismatch.
	Reason string
}

// Error implements error.
func (e *LawViolation) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrLawViolation, e.Op, e.Reason)
}

// Unwrap lets errors.Is match ErrLawViolation.
func (e *LawViolation) Unwrap() error {
	return ErrLawViolation
}

// Violation builds a *LawViolation with a formatted reason.
func Violation(op, format string, args ...any) error {
	return &LawViolation{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsLawViolation reports whether err is or wraps a law violation.
func IsLawViolation(err error) bool {
	return errors.Is(err, ErrLawViolation)
}
