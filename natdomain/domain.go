// Package natdomain is the reference domain used to check the category,
// functor and gluing laws: objects are natural numbers and there is exactly one
// "interval" arrow (a, b) between any two of them.
package natdomain

import (
	"fmt"

	"github.com/c360studio/semverse/category"
)

// Nat is an object of the reference domain.
type Nat uint64

// Interval is the arrow From → To.
type Interval struct {
	From Nat
	To   Nat
}

// Source implements category.Morphism.
func (i Interval) Source() Nat { return i.From }

// Target implements category.Morphism.
func (i Interval) Target() Nat { return i.To }

// Compose returns (a, c) for (a, b) then (b, c).
func (i Interval) Compose(other Interval) (Interval, error) {
	if i.To != other.From {
		return Interval{}, category.Violation("compose", "%v ends at %d but %v starts at %d", i, i.To, other, other.From)
	}
	return Interval{From: i.From, To: other.To}, nil
}

// IsIdentity reports From == To. Hom-sets hold a single arrow, so (n, n) is the
// only endo-arrow on n and therefore the identity.
func (i Interval) IsIdentity() bool { return i.From == i.To }

func (i Interval) String() string { return fmt.Sprintf("(%d,%d)", i.From, i.To) }

// Domain is the reference category.
type Domain struct{}

// ID returns (n, n).
func (Domain) ID(n Nat) Interval { return Interval{From: n, To: n} }

// Compose delegates to Interval.Compose.
func (Domain) Compose(f, g Interval) (Interval, error) { return f.Compose(g) }

// Arrow returns the unique arrow from → to.
func Arrow(_ category.Category[Nat, Interval], from, to Nat) (Interval, error) {
	return Interval{From: from, To: to}, nil
}
