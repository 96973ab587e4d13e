package conformance

import (
	"errors"
	"fmt"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/universe"
)

// CheckDescent verifies the cocycle condition at obj: for every overlap witness
// of patches I and J on S, the composites S → P_I → obj and S → P_J → obj must
// be equal. Disagreements are returned as inconsistencies. An overlap whose legs
// break the gluing or composition contracts is skipped and its error joined
// into err, so the remaining overlaps are still checked.
func CheckDescent[O comparable, H category.Morphism[O, H]](u *universe.Universe[O, H], obj O) ([]*Inconsistency, error) {
	overlaps, err := Overlaps(u.Gluing(), obj)
	if err != nil {
		return nil, err
	}

	var (
		found []*Inconsistency
		errs  []error
	)
	for _, ov := range overlaps {
		left, err := viaPatch(u, obj, ov.I, ov.Shared, ov.K)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		right, err := viaPatch(u, obj, ov.J, ov.Shared, ov.L)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if left != right {
			found = append(found, &Inconsistency{
				Object: obj,
				I:      ov.I,
				J:      ov.J,
				Shared: ov.Shared,
				Left:   left,
				Right:  right,
			})
		}
	}
	return found, errors.Join(errs...)
}

// viaPatch composes the leg shared → patch(index) with the restriction
// patch(index) → obj.
func viaPatch[O comparable, H category.Morphism[O, H]](u *universe.Universe[O, H], obj O, index int, shared O, leg int) (H, error) {
	var zero H
	cat, glue := u.Category(), u.Gluing()

	restriction, err := glue.Restriction(cat, obj, index)
	if err != nil {
		return zero, err
	}
	patch := restriction.Source()

	var in H
	if leg == IdentityLeg {
		in = cat.ID(patch)
	} else if in, err = glue.Restriction(cat, patch, leg); err != nil {
		return zero, err
	}
	if in.Source() != shared {
		return zero, category.Violation("descent", "leg %v of patch %v does not start at %v", in, patch, shared)
	}

	h, err := cat.Compose(in, restriction)
	if err != nil {
		return zero, fmt.Errorf("compose leg through patch %d of %v: %w", index, obj, err)
	}
	return h, nil
}
