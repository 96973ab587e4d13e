package conformance

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/gluing"
)

// overlapRules derives overlap witnesses from cover facts. Patches I and J of
// Obj overlap on S when S covers both patches, when patch J itself sits in the
// cover of patch I at K (then S is patch J and its leg is the identity), or when
// both indices name the same patch (then both legs are identities).
const overlapRules = `
Decl cover(Obj, Index, Patch).

shared_patch(Obj, I, J, S, K, L) :-
    cover(Obj, I, Pi), cover(Obj, J, Pj), cover(Pi, K, S), cover(Pj, L, S).

nested_patch(Obj, I, J, K, Pj) :-
    cover(Obj, I, Pi), cover(Obj, J, Pj), cover(Pi, K, Pj).

same_patch(Obj, I, J, P) :-
    cover(Obj, I, P), cover(Obj, J, P).
`

var (
	coverSym       = ast.PredicateSym{Symbol: "cover", Arity: 3}
	sharedPatchSym = ast.PredicateSym{Symbol: "shared_patch", Arity: 6}
	nestedPatchSym = ast.PredicateSym{Symbol: "nested_patch", Arity: 5}
	samePatchSym   = ast.PredicateSym{Symbol: "same_patch", Arity: 4}
)

var overlapProgram = sync.OnceValues(func() (*analysis.ProgramInfo, error) {
	unit, err := parse.Unit(strings.NewReader(overlapRules))
	if err != nil {
		return nil, fmt.Errorf("parse overlap rules: %w", err)
	}
	info, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, fmt.Errorf("analyze overlap rules: %w", err)
	}
	return info, nil
})

// IdentityLeg marks an overlap leg that is the identity on the patch.
const IdentityLeg = -1

// Overlap witnesses that patches I < J of an object meet in Shared. K and L are
// the indices of Shared in the covers of patch I and patch J, or IdentityLeg
// when Shared is the patch itself.
type Overlap[O comparable] struct {
	I, J   int
	Shared O
	K, L   int
}

// Overlaps lists the overlap witnesses of obj's cover in a deterministic order.
// Only obj's cover and the covers of its patches are consulted.
func Overlaps[O comparable, H category.Morphism[O, H]](glue gluing.Condition[O, H], obj O) ([]Overlap[O], error) {
	info, err := overlapProgram()
	if err != nil {
		return nil, err
	}

	ids := newInterner[O]()
	store := factstore.NewSimpleInMemoryStore()
	addCover := func(x O) {
		xid := ids.id(x)
		for i, p := range glue.Covers(x) {
			store.Add(ast.Atom{
				Predicate: coverSym,
				Args:      []ast.BaseTerm{ast.Number(xid), ast.Number(int64(i)), ast.Number(ids.id(p))},
			})
		}
	}

	patches := glue.Covers(obj)
	addCover(obj)
	seen := map[O]bool{obj: true}
	for _, p := range patches {
		if !seen[p] {
			seen[p] = true
			addCover(p)
		}
	}

	if _, err := engine.EvalProgramWithStats(info, store); err != nil {
		return nil, fmt.Errorf("derive overlaps of %v: %w", obj, err)
	}

	objID := ids.id(obj)
	var out []Overlap[O]
	err = store.GetFacts(ast.NewQuery(sharedPatchSym), func(a ast.Atom) error {
		n, err := numbers(a)
		if err != nil {
			return err
		}
		if n[0] != objID || n[1] >= n[2] {
			return nil
		}
		out = append(out, Overlap[O]{I: int(n[1]), J: int(n[2]), Shared: ids.obj(n[3]), K: int(n[4]), L: int(n[5])})
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = store.GetFacts(ast.NewQuery(nestedPatchSym), func(a ast.Atom) error {
		n, err := numbers(a)
		if err != nil {
			return err
		}
		outer, inner := int(n[1]), int(n[2])
		if n[0] != objID || outer == inner {
			return nil
		}
		ov := Overlap[O]{I: outer, J: inner, Shared: ids.obj(n[4]), K: int(n[3]), L: IdentityLeg}
		if outer > inner {
			ov = Overlap[O]{I: inner, J: outer, Shared: ov.Shared, K: IdentityLeg, L: ov.K}
		}
		out = append(out, ov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = store.GetFacts(ast.NewQuery(samePatchSym), func(a ast.Atom) error {
		n, err := numbers(a)
		if err != nil {
			return err
		}
		if n[0] != objID || n[1] >= n[2] {
			return nil
		}
		out = append(out, Overlap[O]{I: int(n[1]), J: int(n[2]), Shared: ids.obj(n[3]), K: IdentityLeg, L: IdentityLeg})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b Overlap[O]) int {
		return cmp.Or(cmp.Compare(a.I, b.I), cmp.Compare(a.J, b.J), cmp.Compare(a.K, b.K), cmp.Compare(a.L, b.L))
	})
	return out, nil
}

func numbers(a ast.Atom) ([]int64, error) {
	out := make([]int64, len(a.Args))
	for i, arg := range a.Args {
		c, ok := arg.(ast.Constant)
		if !ok || c.Type != ast.NumberType {
			return nil, fmt.Errorf("%s argument %d is not a number: %v", a.Predicate.Symbol, i, arg)
		}
		out[i] = c.NumValue
	}
	return out, nil
}

// interner assigns dense numeric ids to objects so they can be used as Mangle
// constants.
type interner[O comparable] struct {
	ids  map[O]int64
	objs []O
}

func newInterner[O comparable]() *interner[O] {
	return &interner[O]{ids: make(map[O]int64)}
}

func (in *interner[O]) id(o O) int64 {
	if id, ok := in.ids[o]; ok {
		return id
	}
	id := int64(len(in.objs))
	in.ids[o] = id
	in.objs = append(in.objs, o)
	return id
}

func (in *interner[O]) obj(id int64) O {
	return in.objs[id]
}
