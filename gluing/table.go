package gluing

import (
	"slices"

	"github.com/c360studio/semverse/category"
)

// CoverFunc lists the patches covering an object.
type CoverFunc[O comparable] func(obj O) []O

// ArrowFunc builds the arrow from → to in cat.
type ArrowFunc[O comparable, H category.Morphism[O, H]] func(cat category.Category[O, H], from, to O) (H, error)

// Table is a Condition assembled from a cover function and an arrow builder.
type Table[O comparable, H category.Morphism[O, H]] struct {
	covers CoverFunc[O]
	arrow  ArrowFunc[O, H]
}

// NewTable returns a gluing condition whose restrictions are built by arrow.
func NewTable[O comparable, H category.Morphism[O, H]](covers CoverFunc[O], arrow ArrowFunc[O, H]) *Table[O, H] {
	return &Table[O, H]{covers: covers, arrow: arrow}
}

// Covers implements Condition. The returned slice is owned by the caller.
func (t *Table[O, H]) Covers(obj O) []O {
	return slices.Clone(t.covers(obj))
}

// LocalPatch implements Condition.
func (t *Table[O, H]) LocalPatch(obj O, index int) (O, error) {
	cover := t.covers(obj)
	if index < 0 || index >= len(cover) {
		var zero O
		return zero, &IndexError{Op: "local_patch", Object: obj, Index: index, Len: len(cover)}
	}
	return cover[index], nil
}

// Restriction implements Condition. The arrow builder must return an arrow
// from the patch to obj; anything else is a law violation.
func (t *Table[O, H]) Restriction(cat category.Category[O, H], obj O, index int) (H, error) {
	var zero H
	patch, err := t.LocalPatch(obj, index)
	if err != nil {
		if ie, ok := err.(*IndexError); ok {
			ie.Op = "restriction"
		}
		return zero, err
	}
	h, err := t.arrow(cat, patch, obj)
	if err != nil {
		return zero, err
	}
	if h.Source() != patch || h.Target() != obj {
		return zero, category.Violation("restriction", "arrow %v does not run %v → %v", h, patch, obj)
	}
	return h, nil
}
