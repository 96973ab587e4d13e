// Package entropy scores semantic universes by the size of their cover
// structure.
//
// For a probe set P and depth D the score is
//
//	E = Σ_{p ∈ P} e(p, D)
//	e(x, 0) = 1
//	e(x, d) = 1 + Σ_{q ∈ Covers(x)} e(q, d-1)
//
// so with the default depth of 1 each probe contributes one plus the number of
// its patches, and an irreducible probe contributes the baseline of 1. The score
// only looks at covers: it never depends on object identity, addresses or memory
// layout. Enlarging the cover of every probed object (and, for D > 1, of every
// object reached from a probe) never lowers it.
package entropy

import (
	"math"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/universe"
)

// DefaultDepth is the cover depth used when none is configured.
const DefaultDepth = 1

// Baseline is the contribution of an irreducible probe.
const Baseline uint64 = 1

// Estimator computes entropy over a bounded probe set.
type Estimator[O comparable] struct {
	// Probes are the objects the score is summed over.
	Probes []O

	// Depth is how many levels of covers are followed. Values below 1 are
	// treated as 1.
	Depth int
}

// New returns an estimator with DefaultDepth.
func New[O comparable](probes []O) Estimator[O] {
	return Estimator[O]{Probes: probes, Depth: DefaultDepth}
}

// Estimate scores u. The result saturates at math.MaxUint64.
func Estimate[O comparable, H category.Morphism[O, H]](est Estimator[O], u *universe.Universe[O, H]) uint64 {
	depth := max(est.Depth, 1)
	glue := u.Gluing()

	memo := make(map[walkKey[O]]uint64)

	var walk func(x O, d int) uint64
	walk = func(x O, d int) uint64 {
		if d == 0 {
			return Baseline
		}
		if v, ok := memo[walkKey[O]{x, d}]; ok {
			return v
		}
		total := Baseline
		for _, q := range glue.Covers(x) {
			total = addSat(total, walk(q, d-1))
		}
		memo[walkKey[O]{x, d}] = total
		return total
	}

	var sum uint64
	for _, p := range est.Probes {
		sum = addSat(sum, walk(p, depth))
	}
	return sum
}

// walkKey memoizes e(x, d); covers are deterministic so each pair is walked once.
type walkKey[O comparable] struct {
	x O
	d int
}

func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
