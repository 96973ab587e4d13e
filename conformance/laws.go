// Package conformance runs the explicit validation pass over a semantic
// universe: the category, functor and cover laws on a finite witness set, and
// the descent (cocycle) condition over overlapping patches.
//
// None of these checks run on ordinary calls into a universe. They are meant
// for configuration time and for tests.
package conformance

import (
	"errors"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/functor"
	"github.com/c360studio/semverse/gluing"
)

// Law names used in LawFailure.
const (
	LawIdentity      = "identity"
	LawAssociativity = "associativity"
	LawFunctoriality = "functoriality"
	LawCoverIndexing = "cover-indexing"
)

// CheckIdentity verifies that ID(o) is an identity for every object and that
// identities are units for every arrow.
func CheckIdentity[O comparable, H category.Morphism[O, H]](cat category.Category[O, H], objects []O, arrows []H) []error {
	var errs []error
	for _, o := range objects {
		if id := cat.ID(o); !id.IsIdentity() {
			errs = append(errs, failure(LawIdentity, "ID(%v) = %v is not an identity", o, id))
		}
	}
	for _, f := range arrows {
		left, err := cat.Compose(cat.ID(f.Source()), f)
		if err != nil {
			errs = append(errs, err)
		} else if left != f {
			errs = append(errs, failure(LawIdentity, "id ∘ %v = %v", f, left))
		}
		right, err := cat.Compose(f, cat.ID(f.Target()))
		if err != nil {
			errs = append(errs, err)
		} else if right != f {
			errs = append(errs, failure(LawIdentity, "%v ∘ id = %v", f, right))
		}
	}
	return errs
}

// CheckAssociativity verifies (f;g);h == f;(g;h) for every composable triple
// drawn from arrows.
func CheckAssociativity[O comparable, H category.Morphism[O, H]](cat category.Category[O, H], arrows []H) []error {
	var errs []error
	for _, f := range arrows {
		for _, g := range arrows {
			if !category.Composable[O](f, g) {
				continue
			}
			for _, h := range arrows {
				if !category.Composable[O](g, h) {
					continue
				}
				fg, err := cat.Compose(f, g)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				gh, err := cat.Compose(g, h)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				l, err := cat.Compose(fg, h)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				r, err := cat.Compose(f, gh)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if l != r {
					errs = append(errs, failure(LawAssociativity, "(%v;%v);%v = %v but %v;(%v;%v) = %v", f, g, h, l, f, g, h, r))
				}
			}
		}
	}
	return errs
}

// CheckFunctoriality verifies the identity and composition laws of fun for
// every field and every composable pair of arrows starting at that field.
// Outputs are compared on probes.
func CheckFunctoriality[O comparable, H category.Morphism[O, H]](
	cat category.Category[O, H],
	fun functor.Functor[O, H],
	fields []functor.Field[O],
	arrows []H,
	probes []O,
) []error {
	var errs []error
	for _, x := range fields {
		mapped, err := fun.Map(cat.ID(x.At()), x)
		if err != nil {
			errs = append(errs, err)
		} else if ok, err := functor.Equal(mapped, x, probes); err != nil {
			errs = append(errs, err)
		} else if !ok {
			errs = append(errs, failure(LawFunctoriality, "map(id(%v)) changes the field", x.At()))
		}

		for _, f := range arrows {
			if f.Source() != x.At() {
				continue
			}
			for _, g := range arrows {
				if !category.Composable[O](f, g) {
					continue
				}
				if err := checkPair(cat, fun, x, f, g, probes); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errs
}

func checkPair[O comparable, H category.Morphism[O, H]](
	cat category.Category[O, H],
	fun functor.Functor[O, H],
	x functor.Field[O],
	f, g H,
	probes []O,
) error {
	fg, err := cat.Compose(f, g)
	if err != nil {
		return err
	}
	whole, err := fun.Map(fg, x)
	if err != nil {
		return err
	}
	step, err := fun.Map(f, x)
	if err != nil {
		return err
	}
	step, err = fun.Map(g, step)
	if err != nil {
		return err
	}
	if whole.At() != step.At() {
		return failure(LawFunctoriality, "map(%v;%v) lives over %v, stepwise over %v", f, g, whole.At(), step.At())
	}
	ok, err := functor.Equal(whole, step, probes)
	if err != nil {
		return err
	}
	if !ok {
		return failure(LawFunctoriality, "map(%v;%v) differs from map(%v) after map(%v)", f, g, g, f)
	}
	return nil
}

// CheckCovers verifies LocalPatch(o, i) == Covers(o)[i] for every valid index
// and that the first invalid index is rejected as out of range.
func CheckCovers[O comparable, H category.Morphism[O, H]](glue gluing.Condition[O, H], objects []O) []error {
	var errs []error
	for _, o := range objects {
		cover := glue.Covers(o)
		for i, want := range cover {
			got, err := glue.LocalPatch(o, i)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if got != want {
				errs = append(errs, failure(LawCoverIndexing, "LocalPatch(%v, %d) = %v, Covers gives %v", o, i, got, want))
			}
		}
		if _, err := glue.LocalPatch(o, len(cover)); !errors.Is(err, gluing.ErrIndexOutOfRange) {
			errs = append(errs, failure(LawCoverIndexing, "LocalPatch(%v, %d) accepted an index past the cover", o, len(cover)))
		}
	}
	return errs
}
