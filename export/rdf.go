// Package export serializes registry reports as RDF (Turtle, N-Triples or
// JSON-LD) using the semverse vocabulary.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/c360studio/semverse/report"
	"github.com/c360studio/semverse/vocabulary/semverse"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// ObjectKind says how a triple's object is written. Writers never guess it
// from the value's text.
type ObjectKind int

const (
	// Literal objects are typed by their Go value; strings are always plain
	// string literals.
	Literal ObjectKind = iota

	// EntityRef objects are entity IDs, written as entity IRIs.
	EntityRef

	// DateTime objects are RFC 3339 timestamps, written as xsd:dateTime.
	DateTime
)

// Triple represents a semantic triple for export.
type Triple struct {
	Subject   string
	Predicate string
	Object    any
	Kind      ObjectKind
}

// Entity represents an exportable entity with its type and triples.
type Entity struct {
	ID         string
	EntityType semverse.EntityType
	Triples    []Triple
}

// RDFExporter exports entities to RDF.
type RDFExporter struct {
	entities []Entity
	prefixes map[string]string
}

// NewRDFExporter creates an empty exporter.
func NewRDFExporter() *RDFExporter {
	return &RDFExporter{
		entities: make([]Entity, 0),
		prefixes: defaultPrefixes(),
	}
}

func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":      rdfNamespace,
		"xsd":      xsdNamespace,
		"dc":       "http://purl.org/dc/terms/",
		"prov":     "http://www.w3.org/ns/prov#",
		"semverse": semverse.Namespace,
		"entity":   semverse.EntityNamespace,
	}
}

// AddEntity adds an entity to be exported.
func (e *RDFExporter) AddEntity(entity Entity) {
	e.entities = append(e.entities, entity)
}

// AddReport adds every universe and stratum of r.
func (e *RDFExporter) AddReport(r *report.Report) {
	e.entities = append(e.entities, Entities(r)...)
}

// Export serializes all entities to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		w := NewTurtleWriter(e.prefixes)
		for _, entity := range e.entities {
			w.WriteEntity(entity)
		}
		return w.String(), nil
	case FormatNTriples:
		w := &NTriplesWriter{}
		for _, entity := range e.entities {
			w.WriteEntity(entity)
		}
		return w.String(), nil
	case FormatJSONLD:
		w := NewJSONLDWriter(e.prefixes)
		for _, entity := range e.entities {
			w.AddEntity(entity)
		}
		data, err := w.Bytes()
		if err != nil {
			return "", fmt.Errorf("encode json-ld: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// Entities converts a report into exportable entities: universes first, in
// registry order, then strata from lowest bound to overflow.
func Entities(r *report.Report) []Entity {
	out := make([]Entity, 0, len(r.Universes)+len(r.Strata))
	generated := r.GeneratedAt.Format(time.RFC3339)

	for _, u := range r.Universes {
		triples := []Triple{
			{Subject: u.ID, Predicate: semverse.UniverseName, Object: u.Name},
			{Subject: u.ID, Predicate: semverse.UniverseType, Object: string(semverse.EntityTypeUniverse)},
			{Subject: u.ID, Predicate: semverse.UniverseIndex, Object: u.Index},
			{Subject: u.ID, Predicate: semverse.UniverseEntropy, Object: int64(u.Entropy)},
			{Subject: u.ID, Predicate: semverse.UniverseProbes, Object: r.Probes},
			{Subject: u.ID, Predicate: semverse.UniverseDepth, Object: r.Depth},
			{Subject: u.ID, Predicate: semverse.ValidationStatus, Object: u.Status.String()},
			{Subject: u.ID, Predicate: semverse.ValidationViolations, Object: u.Violations},
			{Subject: u.ID, Predicate: semverse.ValidationInconsistencies, Object: u.Inconsistencies},
			{Subject: u.ID, Predicate: semverse.UniverseGeneratedAt, Object: generated, Kind: DateTime},
		}
		if u.Stratum != "" {
			triples = append(triples, Triple{Subject: u.ID, Predicate: semverse.UniverseStratum, Object: u.Stratum, Kind: EntityRef})
		}
		out = append(out, Entity{ID: u.ID, EntityType: semverse.EntityTypeUniverse, Triples: triples})
	}

	for _, s := range r.Strata {
		triples := []Triple{
			{Subject: s.ID, Predicate: semverse.UniverseType, Object: string(semverse.EntityTypeStratum)},
			{Subject: s.ID, Predicate: semverse.StratumOverflow, Object: s.Overflow},
			{Subject: s.ID, Predicate: semverse.StratumSize, Object: len(s.Members)},
		}
		if !s.Overflow {
			triples = append(triples, Triple{Subject: s.ID, Predicate: semverse.StratumBound, Object: int64(s.Bound)})
		}
		out = append(out, Entity{ID: s.ID, EntityType: semverse.EntityTypeStratum, Triples: triples})
	}
	return out
}

// entityIDToIRI converts a dotted entity ID to an IRI.
// Example: "semverse.universe.6f1c..." -> "https://semverse.dev/entity/universe/6f1c..."
func entityIDToIRI(entityID string) string {
	parts := strings.Split(entityID, ".")
	if len(parts) < 3 || parts[0] != report.EntityPrefix {
		return semverse.EntityNamespace + entityID
	}
	return semverse.EntityNamespace + strings.Join(parts[1:], "/")
}
