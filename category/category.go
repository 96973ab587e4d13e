package category

import "fmt"

// Morphism is the capability an arrow type must provide. H is the arrow type
// itself, so Compose stays closed over one concrete representation.
//
// Arrows must be comparable: the category laws are stated as equalities between
// arrows, and the conformance pass checks them with ==.
type Morphism[O comparable, H any] interface {
	comparable

	// Source is the domain object of the arrow.
	Source() O

	// Target is the codomain object of the arrow.
	Target() O

	// Compose returns "this arrow, then other". It fails with a *LawViolation
	// when the receiver's target differs from other's source.
	Compose(other H) (H, error)

	// IsIdentity reports whether composing with this arrow leaves any
	// composable arrow unchanged.
	IsIdentity() bool
}

// Category provides identities and composition for a family of objects O and
// arrows H. Implementations are pure: the same inputs always give the same
// outputs and no state is kept between calls.
type Category[O comparable, H Morphism[O, H]] interface {
	// ID returns the identity arrow on obj.
	ID(obj O) H

	// Compose returns f then g. Categories that want a different convention
	// override it here so every caller sees the same order.
	Compose(f, g H) (H, error)
}

// Composable reports whether f can be followed by g.
func Composable[O comparable, H Morphism[O, H]](f, g H) bool {
	return f.Target() == g.Source()
}

// ComposeAll folds a path of arrows left to right using cat.Compose.
// An empty path is a law violation because there is no object to take the
// identity of.
func ComposeAll[O comparable, H Morphism[O, H]](cat Category[O, H], path ...H) (H, error) {
	var zero H
	if len(path) == 0 {
		return zero, Violation("compose", "empty path has no identity object")
	}
	acc := path[0]
	for i, h := range path[1:] {
		next, err := cat.Compose(acc, h)
		if err != nil {
			return zero, fmt.Errorf("arrow %d: %w", i+1, err)
		}
		acc = next
	}
	return acc, nil
}
