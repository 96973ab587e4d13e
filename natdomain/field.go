package natdomain

import (
	"fmt"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/functor"
)

// Offset is the realizer carried by reference fields.
type Offset int64

// OffsetFunctor pushes an offset realizer along (a, b) by adding b - a.
// Offsets add under composition, so the transport is functorial.
func OffsetFunctor() *functor.Transport[Nat, Interval] {
	return functor.NewTransport[Nat, Interval](pushOffset)
}

func pushOffset(hom Interval, r functor.Realizer) (functor.Realizer, error) {
	off, ok := r.(Offset)
	if !ok {
		return nil, category.Violation("map", "realizer %v (%T) is not an Offset", r, r)
	}
	return off + Offset(int64(hom.To)-int64(hom.From)), nil
}

// IdentityField lives over at and realizes every object n as Offset(n).
func IdentityField(at Nat) *functor.Func[Nat] {
	return functor.NewFunc(at, func(n Nat) (functor.Realizer, error) {
		return Offset(n), nil
	})
}

// CountingField is like IdentityField but remembers how often it was asked.
// It is a stateful field and is not safe for concurrent use.
type CountingField struct {
	at    Nat
	Calls int
}

// NewCountingField returns a counting field living over at.
func NewCountingField(at Nat) *CountingField { return &CountingField{at: at} }

// At implements functor.Field.
func (f *CountingField) At() Nat { return f.at }

// Realize implements functor.Field.
func (f *CountingField) Realize(n Nat) (functor.Realizer, error) {
	f.Calls++
	return Offset(n), nil
}

func (o Offset) String() string { return fmt.Sprintf("%+d", int64(o)) }
