// Package mapping defines the IRI-tagged mapping-operator vocabulary
// (§4.C) as a closed, tagged-variant type rather than dynamic
// dispatch, per the design note in §9: the resolver branches on the
// variant directly instead of routing through an interface method set.
package mapping

import (
	"fmt"

	"github.com/ARGA-Genomes/arga-transformer/quad"
)

// Predicate IRIs under the mapping operator namespace.
const (
	Namespace = "http://arga.org.au/schemas/mapping/"

	PredicateSame          = quad.IRI(Namespace + "same")
	PredicateCombines      = quad.IRI(Namespace + "combines")
	PredicateHash          = quad.IRI(Namespace + "hash")
	PredicateHashFirst     = quad.IRI(Namespace + "hash_first")
	PredicateWhen          = quad.IRI(Namespace + "when")
	PredicateFrom          = quad.IRI(Namespace + "from")
	PredicateIs            = quad.IRI(Namespace + "is")
	PredicateVia           = quad.IRI(Namespace + "via")
	PredicateTransformsInto = quad.IRI(Namespace + "transforms_into")
)

// Operator names the five mapping operators a canonical field
// predicate may carry, plus "when" as a sixth modifier.
type Operator uint8

const (
	OpSame Operator = iota
	OpCombines
	OpHash
	OpHashFirst
	OpWhen
	OpFrom
)

func (op Operator) String() string {
	switch op {
	case OpSame:
		return "same"
	case OpCombines:
		return "combines"
	case OpHash:
		return "hash"
	case OpHashFirst:
		return "hash_first"
	case OpWhen:
		return "when"
	case OpFrom:
		return "from"
	default:
		return "unknown"
	}
}

// OperatorFromIRI decodes a mapping-predicate IRI into its Operator,
// or reports ok=false for anything outside the closed vocabulary —
// the caller turns that into InvalidMappingIri.
func OperatorFromIRI(p quad.IRI) (Operator, bool) {
	switch p {
	case PredicateSame:
		return OpSame, true
	case PredicateCombines:
		return OpCombines, true
	case PredicateHash:
		return OpHash, true
	case PredicateHashFirst:
		return OpHashFirst, true
	case PredicateWhen:
		return OpWhen, true
	case PredicateFrom:
		return OpFrom, true
	default:
		return 0, false
	}
}

// Condition is the embedded `(field :is literal)` triple carried by a
// `when` mapping.
type Condition struct {
	Subject quad.IRI
	Literal quad.Literal
}

// Check reports whether an observed literal satisfies the condition:
// exact equality, by kind then value (a UInt64 never matches a
// String, per §9's closed-world note on type mismatches).
func (c Condition) Check(observed quad.Literal) bool {
	return c.Literal.Equal(observed)
}

// FromCondition is the embedded `(graph :via field)` triple carried
// by a `from` mapping.
type FromCondition struct {
	Graph quad.IRI
	Via   quad.IRI
}

// Map is a single decoded mapping fact: the operator plus its decoded
// operand, tagged by kind rather than via an interface, per §9.
type Map struct {
	Op Operator

	// One IRI operand, for Same and Hash.
	IRI quad.IRI

	// Ordered IRI list, for Combines and HashFirst.
	List []quad.IRI

	// Embedded when-condition, for When.
	When Condition

	// Embedded from-condition, for From.
	From FromCondition
}

func (m Map) String() string {
	switch m.Op {
	case OpSame, OpHash:
		return fmt.Sprintf("%s(%s)", m.Op, m.IRI)
	case OpCombines, OpHashFirst:
		return fmt.Sprintf("%s(%v)", m.Op, m.List)
	case OpWhen:
		return fmt.Sprintf("when(%s is %s)", m.When.Subject, m.When.Literal)
	case OpFrom:
		return fmt.Sprintf("from(%s via %s)", m.From.Graph, m.From.Via)
	default:
		return "invalid"
	}
}
