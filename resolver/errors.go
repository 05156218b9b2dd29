package resolver

import (
	"fmt"

	"github.com/ARGA-Genomes/arga-transformer/quad"
)

// Kind classifies a resolve failure per §7's taxonomy. The resolver
// returns errors, never panics; Kind lets callers branch on failure
// class without string matching.
type Kind uint8

const (
	KindMissingEntityID Kind = iota
	KindInvalidMappingIRI
	KindAmbiguousMapping
	KindUnsupportedMapping
	KindIRINotFound
	KindUnsupportedSubject
)

func (k Kind) String() string {
	switch k {
	case KindMissingEntityID:
		return "MissingEntityId"
	case KindInvalidMappingIRI:
		return "InvalidMappingIri"
	case KindAmbiguousMapping:
		return "AmbiguousMapping"
	case KindUnsupportedMapping:
		return "UnsupportedMapping"
	case KindIRINotFound:
		return "IriNotFound"
	case KindUnsupportedSubject:
		return "UnsupportedSubject"
	default:
		return "Unknown"
	}
}

// Error is the resolver's single error type; Kind selects which
// optional fields are meaningful.
type Error struct {
	Kind Kind

	IRI      quad.IRI      // InvalidMappingIri, AmbiguousMapping, UnsupportedMapping, IriNotFound
	Values   []string      // AmbiguousMapping: the observed conflicting values
	Detail   string        // free-form context
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAmbiguousMapping:
		return fmt.Sprintf("%s(%s, %v)", e.Kind, e.IRI, e.Values)
	case KindInvalidMappingIRI, KindUnsupportedMapping, KindIRINotFound:
		if e.Detail != "" {
			return fmt.Sprintf("%s(%s): %s", e.Kind, e.IRI, e.Detail)
		}
		return fmt.Sprintf("%s(%s)", e.Kind, e.IRI)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
		}
		return e.Kind.String()
	}
}

func errMissingEntityID(detail string) error {
	return &Error{Kind: KindMissingEntityID, Detail: detail}
}

func errInvalidMappingIRI(iri quad.IRI, detail string) error {
	return &Error{Kind: KindInvalidMappingIRI, IRI: iri, Detail: detail}
}

func errAmbiguousMapping(iri quad.IRI, values []string) error {
	return &Error{Kind: KindAmbiguousMapping, IRI: iri, Values: values}
}

func errUnsupportedMapping(iri quad.IRI, detail string) error {
	return &Error{Kind: KindUnsupportedMapping, IRI: iri, Detail: detail}
}

func errIRINotFound(iri quad.IRI) error {
	return &Error{Kind: KindIRINotFound, IRI: iri}
}

func errUnsupportedSubject(detail string) error {
	return &Error{Kind: KindUnsupportedSubject, Detail: detail}
}
