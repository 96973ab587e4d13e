package functor

import (
	"github.com/c360studio/semverse/category"
)

// PushFunc moves a single realizer along an arrow. For Transport to be a
// functor, pushing along an identity must return r unchanged and pushing along
// Compose(f, g) must equal pushing along f and then along g.
type PushFunc[H any] func(hom H, r Realizer) (Realizer, error)

// Transport is a Functor built from a realizer-level push action.
type Transport[O comparable, H category.Morphism[O, H]] struct {
	push PushFunc[H]
}

// NewTransport returns a functor that pushes every realizer of a field along
// the mapped arrow.
func NewTransport[O comparable, H category.Morphism[O, H]](push PushFunc[H]) *Transport[O, H] {
	return &Transport[O, H]{push: push}
}

// Map implements Functor. Identity arrows return the field itself.
func (t *Transport[O, H]) Map(hom H, field Field[O]) (Field[O], error) {
	if field == nil {
		return nil, category.Violation("map", "nil field")
	}
	if field.At() != hom.Source() {
		return nil, category.Violation("map", "field lives over %v but arrow starts at %v", field.At(), hom.Source())
	}
	if hom.IsIdentity() {
		return field, nil
	}
	return &transported[O, H]{base: field, hom: hom, push: t.push}, nil
}

// transported is a field seen through one arrow. Nested transports are kept as
// a chain rather than collapsed so a stateful base field is still called once
// per Realize.
type transported[O comparable, H category.Morphism[O, H]] struct {
	base Field[O]
	hom  H
	push PushFunc[H]
}

func (t *transported[O, H]) At() O { return t.hom.Target() }

func (t *transported[O, H]) Realize(obj O) (Realizer, error) {
	r, err := t.base.Realize(obj)
	if err != nil {
		return nil, err
	}
	return t.push(t.hom, r)
}
