package natdomain

import "github.com/c360studio/semverse/universe"

// Universe is a reference semantic universe.
type Universe = universe.Universe[Nat, Interval]

// NewUniverse assembles a reference universe whose covers have the given width.
func NewUniverse(name string, width uint64) *Universe {
	return universe.New[Nat, Interval](name, Domain{}, OffsetFunctor(), IntervalCover{Width: width}.Gluing())
}

// Probes returns the objects 0..n-1, the default probe set for reference
// universes.
func Probes(n int) []Nat {
	out := make([]Nat, n)
	for i := range out {
		out[i] = Nat(i)
	}
	return out
}

// Arrows returns every interval between the given objects, identities
// included, in row-major order.
func Arrows(objects []Nat) []Interval {
	out := make([]Interval, 0, len(objects)*len(objects))
	for _, a := range objects {
		for _, b := range objects {
			out = append(out, Interval{From: a, To: b})
		}
	}
	return out
}
