// Package graph carries registry reports as semstreams entity payloads, so a
// reporting layer can hand them to knowledge-graph ingestion.
package graph

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/semverse/export"
	"github.com/c360studio/semverse/report"
)

// Source is the provenance recorded on every triple.
const Source = "semverse.report"

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "universe",
		Category:    "report",
		Version:     "v1",
		Description: "Semantic universe report entity with triples",
		Factory:     func() any { return &ReportPayload{} },
	})
	if err != nil {
		panic("failed to register ReportPayload: " + err.Error())
	}
}

// ReportType is the message type for universe report payloads.
var ReportType = message.Type{Domain: "universe", Category: "report", Version: "v1"}

// ReportPayload is one report entity (a universe or a stratum) with its triples.
type ReportPayload struct {
	EntityID_  string           `json:"id"`
	TripleData []message.Triple `json:"triples"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (p *ReportPayload) EntityID() string          { return p.EntityID_ }
func (p *ReportPayload) Triples() []message.Triple { return p.TripleData }
func (p *ReportPayload) Schema() message.Type      { return ReportType }

func (p *ReportPayload) Validate() error {
	if p.EntityID_ == "" {
		return errors.New("entity ID is required")
	}
	for _, t := range p.TripleData {
		if t.Subject != p.EntityID_ {
			return errors.New("triple subject does not match entity ID")
		}
	}
	return nil
}

func (p *ReportPayload) MarshalJSON() ([]byte, error) {
	type Alias ReportPayload
	return json.Marshal((*Alias)(p))
}

func (p *ReportPayload) UnmarshalJSON(data []byte) error {
	type Alias ReportPayload
	return json.Unmarshal(data, (*Alias)(p))
}

// Payloads converts every entity of r into a payload stamped with the report's
// generation time.
func Payloads(r *report.Report) []*ReportPayload {
	entities := export.Entities(r)
	out := make([]*ReportPayload, 0, len(entities))
	for _, e := range entities {
		triples := make([]message.Triple, 0, len(e.Triples))
		for _, t := range e.Triples {
			triples = append(triples, message.Triple{
				Subject:    t.Subject,
				Predicate:  t.Predicate,
				Object:     t.Object,
				Source:     Source,
				Timestamp:  r.GeneratedAt,
				Confidence: 1.0,
			})
		}
		out = append(out, &ReportPayload{
			EntityID_:  e.ID,
			TripleData: triples,
			UpdatedAt:  r.GeneratedAt,
		})
	}
	return out
}
