package semverse

import "github.com/c360studio/semstreams/vocabulary"

// Universe metadata predicates.
const (
	// UniverseName is the reporting name of the universe.
	UniverseName = "universe.meta.name"

	// UniverseType is the entity type ("universe").
	UniverseType = "universe.meta.type"

	// UniverseIndex is the insertion position in the registry (0-based).
	UniverseIndex = "universe.meta.index"

	// UniverseGeneratedAt is when the report was produced (RFC3339).
	UniverseGeneratedAt = "universe.meta.generated_at"
)

// Structure predicates.
const (
	// UniverseEntropy is the structural entropy score.
	UniverseEntropy = "universe.structure.entropy"

	// UniverseProbes is the number of probe objects the score was summed over.
	UniverseProbes = "universe.structure.probes"

	// UniverseDepth is the cover depth the score followed.
	UniverseDepth = "universe.structure.depth"

	// UniverseStratum links a universe to its stratum entity.
	UniverseStratum = "universe.structure.stratum"
)

// Stratum predicates.
const (
	// StratumBound is the inclusive upper entropy bound.
	StratumBound = "universe.stratum.bound"

	// StratumOverflow marks the bucket above every bound.
	StratumOverflow = "universe.stratum.overflow"

	// StratumSize is the number of member universes.
	StratumSize = "universe.stratum.size"
)

// Validation predicates.
const (
	// ValidationStatus is a ConformanceStatus value.
	ValidationStatus = "universe.validation.status"

	// ValidationViolations counts failed laws.
	ValidationViolations = "universe.validation.violations"

	// ValidationInconsistencies counts descent failures.
	ValidationInconsistencies = "universe.validation.inconsistencies"
)

func init() {
	vocabulary.Register(UniverseName,
		vocabulary.WithDescription("Reporting name of the semantic universe"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(UniverseType,
		vocabulary.WithDescription("Entity type: universe or stratum"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"type"))

	vocabulary.Register(UniverseIndex,
		vocabulary.WithDescription("Insertion position of the universe in its registry"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"registryIndex"))

	vocabulary.Register(UniverseGeneratedAt,
		vocabulary.WithDescription("Time the report was generated"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(vocabulary.ProvGeneratedAtTime))

	vocabulary.Register(UniverseEntropy,
		vocabulary.WithDescription("Structural entropy summed over the probe set"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"entropy"))

	vocabulary.Register(UniverseProbes,
		vocabulary.WithDescription("Number of probe objects the entropy covers"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"probeCount"))

	vocabulary.Register(UniverseDepth,
		vocabulary.WithDescription("Cover depth followed by the entropy metric"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"coverDepth"))

	vocabulary.Register(UniverseStratum,
		vocabulary.WithDescription("Stratum entity the universe belongs to"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"inStratum"))

	vocabulary.Register(StratumBound,
		vocabulary.WithDescription("Inclusive upper entropy bound of the stratum"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"bound"))

	vocabulary.Register(StratumOverflow,
		vocabulary.WithDescription("True for the stratum above every configured bound"),
		vocabulary.WithDataType("bool"),
		vocabulary.WithIRI(Namespace+"overflow"))

	vocabulary.Register(StratumSize,
		vocabulary.WithDescription("Number of universes in the stratum"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"size"))

	vocabulary.Register(ValidationStatus,
		vocabulary.WithDescription("Conformance status: conformant, violated, inconsistent, unchecked"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"conformance"))

	vocabulary.Register(ValidationViolations,
		vocabulary.WithDescription("Number of failed category, functor or cover laws"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"violations"))

	vocabulary.Register(ValidationInconsistencies,
		vocabulary.WithDescription("Number of descent (cocycle) failures"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"inconsistencies"))
}
