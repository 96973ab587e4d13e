// Package registry keeps an ordered collection of semantic universes and
// classifies them by entropy.
//
// There is no package-level instance. A process that wants one shared registry
// constructs it at its entry point and passes it down.
package registry

import (
	"math"
	"slices"
	"sync"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/entropy"
	"github.com/c360studio/semverse/universe"
)

// Registry stores universes in insertion order. Duplicates are kept and nothing
// is ever removed. Add takes the write lock; every read takes the read lock.
// Stored universes are immutable, so no finer locking is needed.
type Registry[O comparable, H category.Morphism[O, H]] struct {
	mu        sync.RWMutex
	universes []*universe.Universe[O, H]
	estimator entropy.Estimator[O]
}

// Stratum is one bucket produced by Strata.
type Stratum[O comparable, H category.Morphism[O, H]] struct {
	// Bound is the inclusive upper entropy bound of the bucket.
	Bound uint64

	// Overflow marks the last bucket, holding universes above every bound.
	Overflow bool

	// Universes are the members in insertion order.
	Universes []*universe.Universe[O, H]
}

// New creates an empty registry that scores universes with est.
func New[O comparable, H category.Morphism[O, H]](est entropy.Estimator[O]) *Registry[O, H] {
	return &Registry[O, H]{estimator: est}
}

// Add appends u. A nil universe is ignored.
func (r *Registry[O, H]) Add(u *universe.Universe[O, H]) {
	if u == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.universes = append(r.universes, u)
}

// Len returns the number of stored entries, duplicates included.
func (r *Registry[O, H]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.universes)
}

// All returns every stored universe in insertion order. The slice is a fresh
// copy; the universes are shared.
func (r *Registry[O, H]) All() []*universe.Universe[O, H] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.universes)
}

// Estimator returns the estimator the registry scores with.
func (r *Registry[O, H]) Estimator() entropy.Estimator[O] {
	return r.estimator
}

// Entropy scores u with the registry's estimator.
func (r *Registry[O, H]) Entropy(u *universe.Universe[O, H]) uint64 {
	return entropy.Estimate(r.estimator, u)
}

// StratifyByEntropy returns the stored universes whose entropy is at most
// threshold, in insertion order.
func (r *Registry[O, H]) StratifyByEntropy(threshold uint64) []*universe.Universe[O, H] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*universe.Universe[O, H], 0, len(r.universes))
	for _, u := range r.universes {
		if r.Entropy(u) <= threshold {
			out = append(out, u)
		}
	}
	return out
}

// Strata buckets every stored universe by the smallest bound its entropy does
// not exceed. Bounds are sorted and deduplicated; the result always has one
// bucket per distinct bound plus a trailing overflow bucket.
func (r *Registry[O, H]) Strata(bounds []uint64) []Stratum[O, H] {
	sorted := slices.Clone(bounds)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	strata := make([]Stratum[O, H], len(sorted)+1)
	for i, b := range sorted {
		strata[i].Bound = b
	}
	strata[len(sorted)].Bound = math.MaxUint64
	strata[len(sorted)].Overflow = true

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.universes {
		e := r.Entropy(u)
		i, _ := slices.BinarySearch(sorted, e)
		strata[i].Universes = append(strata[i].Universes, u)
	}
	return strata
}
