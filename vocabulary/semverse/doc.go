// Package semverse provides vocabulary predicates for semantic universe reports.
//
// Reports describe each registered universe: its name, its entropy and the
// stratum it falls into, and the outcome of the conformance pass. Predicates
// follow the semstreams three-level dotted notation (domain.category.property)
// and are registered in init(), so importing the package is enough:
//
//	import _ "github.com/c360studio/semverse/vocabulary/semverse"
//
// Where a standard term exists (Dublin Core, PROV-O) the predicate is mapped to
// it with vocabulary.WithIRI so RDF export emits the standard IRI.
package semverse
