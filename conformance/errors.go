package conformance

import (
	"errors"
	"fmt"

	"github.com/c360studio/semverse/category"
)

// ErrStructuralInconsistency is matched by every descent failure.
var ErrStructuralInconsistency = errors.New("structural inconsistency")

// Inconsistency is a descent failure: two patches of Object overlap on Shared,
// but the two ways of reaching Object from Shared give different arrows.
type Inconsistency struct {
	Object any
	I, J   int
	Shared any
	Left   any
	Right  any
}

// Error implements error.
func (e *Inconsistency) Error() string {
	return fmt.Sprintf("%s: %v: patches %d and %d disagree over %v: %v != %v",
		ErrStructuralInconsistency, e.Object, e.I, e.J, e.Shared, e.Left, e.Right)
}

// Unwrap lets errors.Is match ErrStructuralInconsistency.
func (e *Inconsistency) Unwrap() error {
	return ErrStructuralInconsistency
}

// LawFailure reports that a category, functor or cover law does not hold for
// some witness. It is a law violation of the implementation under test.
type LawFailure struct {
	Law    string
	Detail string
}

// Error implements error.
func (e *LawFailure) Error() string {
	return fmt.Sprintf("%s: %s law: %s", category.ErrLawViolation, e.Law, e.Detail)
}

// Unwrap lets errors.Is match category.ErrLawViolation.
func (e *LawFailure) Unwrap() error {
	return category.ErrLawViolation
}

func failure(law, format string, args ...any) *LawFailure {
	return &LawFailure{Law: law, Detail: fmt.Sprintf(format, args...)}
}
