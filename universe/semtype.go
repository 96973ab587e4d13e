package universe

import (
	"fmt"

	"github.com/c360studio/semverse/functor"
)

// Type is a realized semantic type: a base object together with the fiber a
// field produced for it. Values are never mutated after Realize.
type Type[O comparable] struct {
	Base  O
	Fiber functor.Realizer
}

// Realize applies field to base.
func Realize[O comparable](field functor.Field[O], base O) (Type[O], error) {
	fiber, err := field.Realize(base)
	if err != nil {
		return Type[O]{}, fmt.Errorf("realize %v: %w", base, err)
	}
	return Type[O]{Base: base, Fiber: fiber}, nil
}

func (t Type[O]) String() string {
	return fmt.Sprintf("%v:%v", t.Base, t.Fiber)
}
