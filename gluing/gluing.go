// Package gluing describes covers of objects by finite lists of patches and the
// restriction arrows connecting each patch to the object it covers.
//
// Restrictions run from the patch into the covered object (patch → obj). The
// descent (cocycle) condition over overlapping patches is not enforced here; it
// is checked by an explicit validation pass in package conformance.
package gluing

import (
	"errors"
	"fmt"

	"github.com/c360studio/semverse/category"
)

// ErrIndexOutOfRange is matched when a cover index is negative or not smaller
// than the cover length. Such errors also match category.ErrLawViolation.
var ErrIndexOutOfRange = errors.New("cover index out of range")

// IndexError reports a cover index outside [0, Len).
type IndexError struct {
	Op     string
	Object any
	Index  int
	Len    int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s: index %d for %v with %d patches", category.ErrLawViolation, e.Op, e.Index, e.Object, e.Len)
}

// Unwrap exposes both sentinels to errors.Is.
func (e *IndexError) Unwrap() []error {
	return []error{ErrIndexOutOfRange, category.ErrLawViolation}
}

// Condition is the gluing capability over a category.
type Condition[O comparable, H category.Morphism[O, H]] interface {
	// Covers returns the ordered, finite cover of obj. An empty cover marks
	// obj as irreducible. The result is deterministic for a given obj.
	Covers(obj O) []O

	// LocalPatch returns Covers(obj)[index] or an *IndexError.
	LocalPatch(obj O, index int) (O, error)

	// Restriction returns the arrow LocalPatch(obj, index) → obj in cat.
	Restriction(cat category.Category[O, H], obj O, index int) (H, error)
}
