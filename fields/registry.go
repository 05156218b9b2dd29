// Package fields implements the per-domain canonical field registries
// of §4.D: for each domain, a closed set of canonical field IRIs and
// a total `(field, Literal) → typed Field` conversion. Numeric fields
// strip commas before parsing as uint64; percent-style fields that
// fail integer parsing fall back to a rounded float32, matching the
// str_to_u64/str_to_f32 coercion in the domain this was distilled
// from.
package fields

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ARGA-Genomes/arga-transformer/quad"
)

// Namespace is the canonical field IRI prefix (§6).
const Namespace = "http://arga.org.au/schemas/fields/"

// Kind tags how a field's literal value is materialized.
type Kind uint8

const (
	KindString Kind = iota
	KindUInt64
	KindPercentUInt64       // u64 field that tolerates a float percent fallback
	KindUInt64ZeroOnFailure // u64 field that defaults to 0 on unparsable input
)

// Spec describes one canonical field within a domain registry.
type Spec struct {
	Name   string // Go-facing variant name, e.g. "CanonicalName"
	Suffix string // IRI local name under Namespace, e.g. "canonical_name"
	Kind   Kind
}

// Field is a single materialized, typed canonical-field value.
type Field struct {
	Name string
	IRI  quad.IRI
	Kind Kind
	Str  string
	U64  uint64
}

func (f Field) String() string {
	if f.Kind == KindString {
		return fmt.Sprintf("%s(%q)", f.Name, f.Str)
	}
	return fmt.Sprintf("%s(%d)", f.Name, f.U64)
}

// Registry is the closed field-IRI set and converter for one domain.
type Registry struct {
	Domain string
	byIRI  map[quad.IRI]Spec
	order  []quad.IRI
}

// NewRegistry builds a Registry from an ordered Spec table.
func NewRegistry(domain string, specs []Spec) *Registry {
	r := &Registry{Domain: domain, byIRI: make(map[quad.IRI]Spec, len(specs))}
	for _, sp := range specs {
		iri := quad.IRI(Namespace + sp.Suffix)
		r.byIRI[iri] = sp
		r.order = append(r.order, iri)
	}
	return r
}

// IRIs returns the closed, ordered list of canonical field IRIs this
// registry recognises — the `fields` argument domain accessors pass
// to resolve.
func (r *Registry) IRIs() []quad.IRI { return append([]quad.IRI(nil), r.order...) }

// FromLiteral materializes a typed Field for the given canonical IRI
// and observed literal, or returns an UnsupportedLiteral-class error
// for an unrecognised IRI or an unparsable numeric value.
func (r *Registry) FromLiteral(iri quad.IRI, lit quad.Literal) (Field, error) {
	sp, ok := r.byIRI[iri]
	if !ok {
		return Field{}, fmt.Errorf("%s registry: unsupported field %s", r.Domain, iri)
	}
	switch sp.Kind {
	case KindString:
		return Field{Name: sp.Name, IRI: iri, Kind: KindString, Str: lit.Text()}, nil
	case KindUInt64, KindPercentUInt64, KindUInt64ZeroOnFailure:
		if n, ok := lit.Uint64(); ok {
			return Field{Name: sp.Name, IRI: iri, Kind: KindUInt64, U64: n}, nil
		}
		n, err := coerceUint64(lit.Text(), sp.Kind)
		if err != nil {
			return Field{}, fmt.Errorf("%s registry: field %s: %w", r.Domain, iri, err)
		}
		return Field{Name: sp.Name, IRI: iri, Kind: KindUInt64, U64: n}, nil
	default:
		return Field{}, fmt.Errorf("%s registry: field %s has unknown kind", r.Domain, iri)
	}
}

// coerceUint64 strips thousands-separator commas and parses as a
// base-10 uint64. Percent-style fields fall back to a rounded
// float32 on integer-parse failure; zero-on-failure fields
// (Annotation's gene counts) default to 0 instead of erroring,
// matching their distinct fallback behavior in the system this was
// distilled from. Any other kind's unparsable value is a hard error.
func coerceUint64(raw string, kind Kind) (uint64, error) {
	scrubbed := strings.ReplaceAll(raw, ",", "")
	n, err := strconv.ParseUint(scrubbed, 10, 64)
	if err == nil {
		return n, nil
	}
	switch kind {
	case KindPercentUInt64:
		if f, ferr := strconv.ParseFloat(scrubbed, 32); ferr == nil {
			return uint64(math.Round(f)), nil
		}
	case KindUInt64ZeroOnFailure:
		return 0, nil
	}
	return 0, err
}
