// Package category defines the morphism and base-category capabilities that every
// semantic universe is built on, together with the law-violation error taxonomy.
//
// Composition is diagrammatic throughout: Compose(f, g) means "f, then g", so an
// arrow A→B composed with B→C yields A→C. Categories hold no objects or arrows
// themselves; they only provide identities and composition.
package category
