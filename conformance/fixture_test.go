package conformance

import (
	"fmt"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/functor"
	"github.com/c360studio/semverse/gluing"
	"github.com/c360studio/semverse/natdomain"
	"github.com/c360studio/semverse/universe"
)

// path is an arrow of the free category on labeled edges: parallel arrows with
// different labels are different, so covers need not commute.
type path struct {
	from, to string
	label    string
}

func (p path) Source() string   { return p.from }
func (p path) Target() string   { return p.to }
func (p path) IsIdentity() bool { return p.label == "" }
func (p path) String() string   { return fmt.Sprintf("%s-[%s]->%s", p.from, p.label, p.to) }

func (p path) Compose(q path) (path, error) {
	if p.to != q.from {
		return path{}, category.Violation("compose", "%v does not meet %v", p, q)
	}
	return path{from: p.from, to: q.to, label: p.label + q.label}, nil
}

type free struct{}

func (free) ID(o string) path                { return path{from: o, to: o} }
func (free) Compose(f, g path) (path, error) { return f.Compose(g) }

// diamond covers X by A and B, both of which are covered by S.
var diamond = map[string][]string{
	"X": {"A", "B"},
	"A": {"S"},
	"B": {"S"},
}

// labelEdge names every restriction after its endpoints, so S→A→X and S→B→X
// differ.
func labelEdge(_ category.Category[string, path], from, to string) (path, error) {
	return path{from: from, to: to, label: from + to}, nil
}

// uniformEdge gives every restriction the same label, so all squares commute.
func uniformEdge(_ category.Category[string, path], from, to string) (path, error) {
	return path{from: from, to: to, label: "r"}, nil
}

func freeUniverse(name string, covers map[string][]string, arrow gluing.ArrowFunc[string, path]) *universe.Universe[string, path] {
	glue := gluing.NewTable[string, path](func(o string) []string { return covers[o] }, arrow)
	fun := functor.NewTransport[string, path](func(_ path, r functor.Realizer) (functor.Realizer, error) { return r, nil })
	return universe.New[string, path](name, free{}, fun, glue)
}

// brokenDomain hands out non-identity arrows from ID.
type brokenDomain struct{ natdomain.Domain }

func (brokenDomain) ID(n natdomain.Nat) natdomain.Interval {
	return natdomain.Interval{From: n, To: n + 1}
}

func natWitnesses(n int) Witnesses[natdomain.Nat, natdomain.Interval] {
	small := natdomain.Probes(min(n, 4))
	fields := make([]functor.Field[natdomain.Nat], 0, len(small))
	for _, o := range small {
		fields = append(fields, natdomain.IdentityField(o))
	}
	return Witnesses[natdomain.Nat, natdomain.Interval]{
		Objects: natdomain.Probes(n),
		Arrows:  natdomain.Arrows(small),
		Fields:  fields,
		Probes:  small,
	}
}
