package conformance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/functor"
	"github.com/c360studio/semverse/gluing"
	"github.com/c360studio/semverse/natdomain"
	"github.com/c360studio/semverse/universe"
)

func TestLawsHoldOnReferenceDomain(t *testing.T) {
	cat := natdomain.Domain{}
	w := natWitnesses(6)

	assert.Empty(t, CheckIdentity[natdomain.Nat, natdomain.Interval](cat, w.Objects, w.Arrows))
	assert.Empty(t, CheckAssociativity[natdomain.Nat, natdomain.Interval](cat, w.Arrows))
	assert.Empty(t, CheckFunctoriality[natdomain.Nat, natdomain.Interval](cat, natdomain.OffsetFunctor(), w.Fields, w.Arrows, w.Probes))

	for width := uint64(0); width <= 4; width++ {
		assert.Empty(t, CheckCovers[natdomain.Nat, natdomain.Interval](natdomain.IntervalCover{Width: width}.Gluing(), w.Objects), "width %d", width)
	}
}

func TestCheckIdentityDetectsBrokenID(t *testing.T) {
	errs := CheckIdentity[natdomain.Nat, natdomain.Interval](brokenDomain{}, []natdomain.Nat{2}, nil)
	require.Len(t, errs, 1)

	var lf *LawFailure
	require.True(t, errors.As(errs[0], &lf))
	assert.Equal(t, LawIdentity, lf.Law)
	assert.ErrorIs(t, errs[0], category.ErrLawViolation)
}

func TestCheckFunctorialityDetectsBrokenPush(t *testing.T) {
	// Pushing ignores the arrow and adds one, so composites are not preserved.
	bumping := functor.NewTransport[natdomain.Nat, natdomain.Interval](func(_ natdomain.Interval, r functor.Realizer) (functor.Realizer, error) {
		return r.(natdomain.Offset) + 1, nil
	})
	fields := []functor.Field[natdomain.Nat]{natdomain.IdentityField(0)}
	arrows := []natdomain.Interval{{From: 0, To: 1}, {From: 1, To: 2}}

	errs := CheckFunctoriality[natdomain.Nat, natdomain.Interval](natdomain.Domain{}, bumping, fields, arrows, natdomain.Probes(2))
	require.NotEmpty(t, errs)
	for _, err := range errs {
		var lf *LawFailure
		require.True(t, errors.As(err, &lf))
		assert.Equal(t, LawFunctoriality, lf.Law)
	}
}

func TestCheckCoversDetectsLenientIndexing(t *testing.T) {
	errs := CheckCovers[natdomain.Nat, natdomain.Interval](lenientCover{}, []natdomain.Nat{3})
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], category.ErrLawViolation)
}

// lenientCover wraps indices around instead of rejecting them.
type lenientCover struct{}

func (lenientCover) Covers(n natdomain.Nat) []natdomain.Nat {
	return natdomain.IntervalCover{Width: 2}.Patches(n)
}

func (c lenientCover) LocalPatch(n natdomain.Nat, index int) (natdomain.Nat, error) {
	cover := c.Covers(n)
	return cover[index%len(cover)], nil
}

func (c lenientCover) Restriction(cat category.Category[natdomain.Nat, natdomain.Interval], n natdomain.Nat, index int) (natdomain.Interval, error) {
	p, _ := c.LocalPatch(n, index)
	return natdomain.Arrow(cat, p, n)
}

var _ gluing.Condition[natdomain.Nat, natdomain.Interval] = lenientCover{}

func TestOverlapsOnIntervalCover(t *testing.T) {
	glue := natdomain.IntervalCover{Width: 2}.Gluing()

	got, err := Overlaps[natdomain.Nat, natdomain.Interval](glue, 5)
	require.NoError(t, err)
	// Cover of 5 is [4 3]: 3 sits in the cover of 4, and both cover 2.
	assert.Equal(t, []Overlap[natdomain.Nat]{
		{I: 0, J: 1, Shared: 3, K: 0, L: IdentityLeg},
		{I: 0, J: 1, Shared: 2, K: 1, L: 0},
	}, got)

	got, err = Overlaps[natdomain.Nat, natdomain.Interval](glue, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOverlapsWithRepeatedPatch(t *testing.T) {
	u := freeUniverse("repeat", map[string][]string{
		"X": {"A", "A"},
		"A": {"S"},
	}, labelEdge)

	got, err := Overlaps[string, path](u.Gluing(), "X")
	require.NoError(t, err)
	assert.Equal(t, []Overlap[string]{
		{I: 0, J: 1, Shared: "A", K: IdentityLeg, L: IdentityLeg},
		{I: 0, J: 1, Shared: "S", K: 0, L: 0},
	}, got)

	// The same arrow is reached twice, so descent holds.
	found, err := CheckDescent(u, "X")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOverlapsWithNestedPatch(t *testing.T) {
	// B lies in the cover of A, and A comes after B in the cover of X.
	u := freeUniverse("nested", map[string][]string{
		"X": {"B", "A"},
		"A": {"B"},
	}, labelEdge)

	got, err := Overlaps[string, path](u.Gluing(), "X")
	require.NoError(t, err)
	assert.Equal(t, []Overlap[string]{{I: 0, J: 1, Shared: "B", K: IdentityLeg, L: 0}}, got)

	found, err := CheckDescent(u, "X")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, path{from: "B", to: "X", label: "BX"}, found[0].Left)
	assert.Equal(t, path{from: "B", to: "X", label: "BAAX"}, found[0].Right)

	commuting := freeUniverse("nested", map[string][]string{"X": {"B", "A"}, "A": {"B"}}, uniformEdge)
	found, err = CheckDescent(commuting, "X")
	require.NoError(t, err)
	assert.Len(t, found, 1, "r and rr are different paths")
}

// brokenLegs covers X by A and B, which share T and S. Restrictions out of T
// cannot be built.
var brokenLegs = map[string][]string{
	"X": {"A", "B"},
	"A": {"T", "S"},
	"B": {"T", "S"},
}

func noArrowFromT(cat category.Category[string, path], from, to string) (path, error) {
	if from == "T" {
		return path{}, category.Violation("restriction", "no arrow out of %s", from)
	}
	return labelEdge(cat, from, to)
}

func TestDescentContinuesPastLegErrors(t *testing.T) {
	u := freeUniverse("broken-legs", brokenLegs, noArrowFromT)

	found, err := CheckDescent(u, "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, category.ErrLawViolation)

	// The overlap on T fails first; the one on S is still checked.
	require.Len(t, found, 1)
	assert.Equal(t, "S", found[0].Shared)
	assert.Equal(t, path{from: "S", to: "X", label: "SAAX"}, found[0].Left)
}

func TestDescentHoldsOnReferenceUniverses(t *testing.T) {
	for width := uint64(0); width <= 4; width++ {
		u := natdomain.NewUniverse("ref", width)
		for _, obj := range natdomain.Probes(10) {
			found, err := CheckDescent(u, obj)
			require.NoError(t, err)
			assert.Empty(t, found, "width %d object %d", width, obj)
		}
	}
}

func TestDescentDetectsNonCommutingCover(t *testing.T) {
	u := freeUniverse("diamond", diamond, labelEdge)

	found, err := CheckDescent(u, "X")
	require.NoError(t, err)
	require.Len(t, found, 1)

	inc := found[0]
	assert.Equal(t, "X", inc.Object)
	assert.Equal(t, 0, inc.I)
	assert.Equal(t, 1, inc.J)
	assert.Equal(t, "S", inc.Shared)
	assert.Equal(t, path{from: "S", to: "X", label: "SAAX"}, inc.Left)
	assert.Equal(t, path{from: "S", to: "X", label: "SBBX"}, inc.Right)
	assert.ErrorIs(t, inc, ErrStructuralInconsistency)

	commuting := freeUniverse("diamond", diamond, uniformEdge)
	found, err = CheckDescent(commuting, "X")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestValidateReferenceUniverse(t *testing.T) {
	v := NewValidator(nil)

	rep, err := Validate(context.Background(), v, natdomain.NewUniverse("pair", 2), natWitnesses(8))
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.NoError(t, rep.Err())
	assert.Equal(t, "pair", rep.Universe)
}

func TestValidateCollectsFailures(t *testing.T) {
	v := NewValidator(nil)

	u := freeUniverse("diamond", diamond, labelEdge)
	w := Witnesses[string, path]{
		Objects: []string{"X", "A", "B", "S"},
		Arrows:  []path{{from: "S", to: "A", label: "x"}, {from: "A", to: "X", label: "y"}},
	}

	rep, err := Validate(context.Background(), v, u, w)
	require.NoError(t, err)
	assert.False(t, rep.OK())
	assert.Empty(t, rep.Violations)
	require.Len(t, rep.Inconsistencies, 1)
	assert.ErrorIs(t, rep.Err(), ErrStructuralInconsistency)

	broken := universe.New[natdomain.Nat, natdomain.Interval]("broken", brokenDomain{}, natdomain.OffsetFunctor(), natdomain.IntervalCover{Width: 1}.Gluing())
	rep, err = Validate(context.Background(), v, broken, Witnesses[natdomain.Nat, natdomain.Interval]{Objects: []natdomain.Nat{0}})
	require.NoError(t, err)
	assert.NotEmpty(t, rep.Violations)
	assert.ErrorIs(t, rep.Err(), category.ErrLawViolation)
}

func TestValidateReportsLegErrorsAndInconsistencies(t *testing.T) {
	u := freeUniverse("broken-legs", brokenLegs, noArrowFromT)

	rep, err := Validate(context.Background(), NewValidator(nil), u, Witnesses[string, path]{Objects: []string{"X"}})
	require.NoError(t, err)
	require.Len(t, rep.Violations, 1)
	assert.ErrorIs(t, rep.Violations[0], category.ErrLawViolation)
	require.Len(t, rep.Inconsistencies, 1)
	assert.Equal(t, "S", rep.Inconsistencies[0].Shared)
}

func TestValidateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Validate(ctx, NewValidator(nil), natdomain.NewUniverse("pair", 2), natWitnesses(4))
	assert.ErrorIs(t, err, context.Canceled)
}
