// Package functor assigns realizer-producing fields to objects and transports
// fields along arrows.
//
// The convention is covariant: a field living over A is mapped along an arrow
// A→B to a field living over B. The laws are
//
//	Map(ID(A), f)        ≡ f
//	Map(Compose(f, g), x) ≡ Map(g, Map(f, x))
//
// where ≡ is extensional equality of realizer outputs on a probe set.
package functor

import (
	"reflect"

	"github.com/c360studio/semverse/category"
)

// Realizer is the opaque value a field computes for an object. Its dynamic type
// is determined by the object alone, never by the caller.
type Realizer = any

// Field produces realizers. A field lives over one object (At) and is only
// transported along arrows leaving that object. Fields may keep state between
// calls and are not safe for concurrent use unless an implementation says so.
type Field[O comparable] interface {
	// At is the object the field currently lives over.
	At() O

	// Realize computes the realizer for obj.
	Realize(obj O) (Realizer, error)
}

// Functor transports fields along arrows of a category.
type Functor[O comparable, H category.Morphism[O, H]] interface {
	// Map returns field transported along hom. The field must live over
	// hom.Source(); the result lives over hom.Target().
	Map(hom H, field Field[O]) (Field[O], error)
}

// Func adapts a function into a Field.
type Func[O comparable] struct {
	at O
	fn func(O) (Realizer, error)
}

// NewFunc returns a field living over at that realizes objects with fn.
func NewFunc[O comparable](at O, fn func(O) (Realizer, error)) *Func[O] {
	return &Func[O]{at: at, fn: fn}
}

// At implements Field.
func (f *Func[O]) At() O { return f.at }

// Realize implements Field.
func (f *Func[O]) Realize(obj O) (Realizer, error) { return f.fn(obj) }

// Equal reports whether a and b produce deeply equal realizers on every probe.
// It stops at the first realizer error.
func Equal[O comparable](a, b Field[O], probes []O) (bool, error) {
	for _, p := range probes {
		ra, err := a.Realize(p)
		if err != nil {
			return false, err
		}
		rb, err := b.Realize(p)
		if err != nil {
			return false, err
		}
		if !reflect.DeepEqual(ra, rb) {
			return false, nil
		}
	}
	return true, nil
}
