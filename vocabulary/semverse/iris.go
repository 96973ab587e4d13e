package semverse

import "github.com/c360studio/semstreams/vocabulary"

// Namespace is the base IRI prefix for all semverse ontology terms.
const Namespace = "https://semverse.dev/ontology/"

// EntityNamespace is the base IRI for semverse entity instances.
const EntityNamespace = "https://semverse.dev/entity/"

// Class IRIs.
const (
	// ClassUniverse is a semantic universe: a category with a field functor
	// and gluing data.
	ClassUniverse = Namespace + "SemanticUniverse"

	// ClassStratum is an entropy bucket of a registry.
	ClassStratum = Namespace + "Stratum"
)

// ClassMap maps entity types to their class IRI.
var ClassMap = map[EntityType]string{
	EntityTypeUniverse: ClassUniverse,
	EntityTypeStratum:  ClassStratum,
}

// PROVClassMap aligns entity types with PROV-O.
var PROVClassMap = map[EntityType]string{
	EntityTypeUniverse: vocabulary.ProvEntity,
	EntityTypeStratum:  vocabulary.ProvEntity,
}

// GetTypesForEntity returns the class IRIs asserted for an entity type.
func GetTypesForEntity(entityType EntityType) []string {
	types := make([]string, 0, 2)
	if class, ok := ClassMap[entityType]; ok {
		types = append(types, class)
	}
	if class, ok := PROVClassMap[entityType]; ok {
		types = append(types, class)
	}
	return types
}

// GetPredicateIRI returns the standard IRI registered for a predicate, falling
// back to the semverse namespace.
func GetPredicateIRI(predicate string) string {
	if meta := vocabulary.GetPredicateMetadata(predicate); meta != nil && meta.StandardIRI != "" {
		return meta.StandardIRI
	}
	return Namespace + predicate
}
