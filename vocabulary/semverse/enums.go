package semverse

// EntityType identifies the kind of entity a report describes.
type EntityType string

const (
	// EntityTypeUniverse is a registered semantic universe.
	EntityTypeUniverse EntityType = "universe"

	// EntityTypeStratum is an entropy stratum of a registry.
	EntityTypeStratum EntityType = "stratum"
)

// ConformanceStatus is the outcome of the conformance pass.
type ConformanceStatus string

const (
	// StatusConformant means every law and the descent condition held.
	StatusConformant ConformanceStatus = "conformant"

	// StatusViolated means at least one category, functor or cover law failed.
	StatusViolated ConformanceStatus = "violated"

	// StatusInconsistent means the laws held but descent failed.
	StatusInconsistent ConformanceStatus = "inconsistent"

	// StatusUnchecked means the universe was not validated.
	StatusUnchecked ConformanceStatus = "unchecked"
)

// String returns the string representation of the status.
func (s ConformanceStatus) String() string {
	return string(s)
}
