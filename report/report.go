// Package report summarises a registry for external consumers: per-universe
// entropy, stratum membership and conformance status, plus Prometheus metrics.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/conformance"
	"github.com/c360studio/semverse/registry"
	"github.com/c360studio/semverse/vocabulary/semverse"
)

// EntityPrefix starts every entity ID a report emits.
const EntityPrefix = "semverse"

// namespace seeds the deterministic universe IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(semverse.EntityNamespace))

// Summary describes one registry entry.
type Summary struct {
	ID              string                     `json:"id"`
	Index           int                        `json:"index"`
	Name            string                     `json:"name"`
	Entropy         uint64                     `json:"entropy"`
	Stratum         string                     `json:"stratum"`
	Status          semverse.ConformanceStatus `json:"status"`
	Violations      int                        `json:"violations"`
	Inconsistencies int                        `json:"inconsistencies"`
}

// StratumSummary describes one entropy bucket.
type StratumSummary struct {
	ID       string   `json:"id"`
	Bound    uint64   `json:"bound"`
	Overflow bool     `json:"overflow"`
	Members  []string `json:"members"`
}

// Report is a snapshot of a registry.
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Depth       int              `json:"depth"`
	Probes      int              `json:"probes"`
	Universes   []Summary        `json:"universes"`
	Strata      []StratumSummary `json:"strata"`
}

// UniverseID returns the entity ID of the universe at index with name. The ID
// is stable across runs for the same position and name.
func UniverseID(index int, name string) string {
	id := uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%d/%s", index, name)))
	return fmt.Sprintf("%s.universe.%s", EntityPrefix, id)
}

// StratumID returns the entity ID of a stratum.
func StratumID(bound uint64, overflow bool) string {
	if overflow {
		return EntityPrefix + ".stratum.overflow"
	}
	return fmt.Sprintf("%s.stratum.le-%d", EntityPrefix, bound)
}

// Build snapshots reg. validations is aligned with the registry's insertion
// order; missing or nil entries are reported as unchecked.
func Build[O comparable, H category.Morphism[O, H]](
	reg *registry.Registry[O, H],
	bounds []uint64,
	validations []*conformance.Report,
	now time.Time,
) *Report {
	est := reg.Estimator()
	rep := &Report{
		GeneratedAt: now.UTC(),
		Depth:       max(est.Depth, 1),
		Probes:      len(est.Probes),
	}

	all := reg.All()
	ids := make(map[int]string, len(all))
	position := make(map[any][]int, len(all))
	for i, u := range all {
		ids[i] = UniverseID(i, u.Name())
		position[u] = append(position[u], i)

		s := Summary{
			ID:      ids[i],
			Index:   i,
			Name:    u.Name(),
			Entropy: reg.Entropy(u),
			Status:  semverse.StatusUnchecked,
		}
		if i < len(validations) && validations[i] != nil {
			v := validations[i]
			s.Violations = len(v.Violations)
			s.Inconsistencies = len(v.Inconsistencies)
			s.Status = status(v)
		}
		rep.Universes = append(rep.Universes, s)
	}

	for _, st := range reg.Strata(bounds) {
		ss := StratumSummary{
			ID:       StratumID(st.Bound, st.Overflow),
			Bound:    st.Bound,
			Overflow: st.Overflow,
			Members:  []string{},
		}
		// The same universe pointer may be stored more than once; hand out
		// its positions in order. Entries added after All() are skipped.
		for _, u := range st.Universes {
			if len(position[u]) == 0 {
				continue
			}
			idx := position[u][0]
			position[u] = position[u][1:]
			ss.Members = append(ss.Members, ids[idx])
			rep.Universes[idx].Stratum = ss.ID
		}
		rep.Strata = append(rep.Strata, ss)
	}
	return rep
}

func status(v *conformance.Report) semverse.ConformanceStatus {
	switch {
	case len(v.Violations) > 0:
		return semverse.StatusViolated
	case len(v.Inconsistencies) > 0:
		return semverse.StatusInconsistent
	default:
		return semverse.StatusConformant
	}
}
