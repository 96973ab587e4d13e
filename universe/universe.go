// Package universe aggregates a category, a field functor and a gluing
// condition into a semantic universe, and carries the data that lives alongside
// one: realized semantic types and persistent semantic contexts.
package universe

import (
	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/functor"
	"github.com/c360studio/semverse/gluing"
)

// Universe is an immutable (category, functor, gluing) triple. The universe owns
// its three capabilities; they have no lifecycle of their own.
type Universe[O comparable, H category.Morphism[O, H]] struct {
	name     string
	category category.Category[O, H]
	functor  functor.Functor[O, H]
	gluing   gluing.Condition[O, H]
}

// New assembles a universe. The name is only used for reporting.
func New[O comparable, H category.Morphism[O, H]](
	name string,
	cat category.Category[O, H],
	fun functor.Functor[O, H],
	glue gluing.Condition[O, H],
) *Universe[O, H] {
	return &Universe[O, H]{
		name:     name,
		category: cat,
		functor:  fun,
		gluing:   glue,
	}
}

// Name returns the reporting name.
func (u *Universe[O, H]) Name() string { return u.name }

// Category returns the base category.
func (u *Universe[O, H]) Category() category.Category[O, H] { return u.category }

// Functor returns the field functor.
func (u *Universe[O, H]) Functor() functor.Functor[O, H] { return u.functor }

// Gluing returns the gluing condition.
func (u *Universe[O, H]) Gluing() gluing.Condition[O, H] { return u.gluing }

// Restrict transports field along the i-th restriction of obj. Because
// restrictions run patch → obj, the field must live over the patch.
func (u *Universe[O, H]) Restrict(field functor.Field[O], obj O, index int) (functor.Field[O], error) {
	hom, err := u.gluing.Restriction(u.category, obj, index)
	if err != nil {
		return nil, err
	}
	return u.functor.Map(hom, field)
}
