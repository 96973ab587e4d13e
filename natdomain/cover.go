package natdomain

import "github.com/c360studio/semverse/gluing"

// IntervalCover covers n by its Width predecessors, nearest first:
// [n-1, n-2, ..., max(0, n-Width)]. Zero and width 0 give irreducible objects.
type IntervalCover struct {
	Width uint64
}

// Patches lists the cover of n.
func (c IntervalCover) Patches(n Nat) []Nat {
	out := make([]Nat, 0, min(c.Width, uint64(n)))
	for k := uint64(1); k <= c.Width && k <= uint64(n); k++ {
		out = append(out, n-Nat(k))
	}
	return out
}

// Gluing returns the cover as a gluing condition with restrictions (patch, n).
func (c IntervalCover) Gluing() *gluing.Table[Nat, Interval] {
	return gluing.NewTable[Nat, Interval](c.Patches, Arrow)
}
