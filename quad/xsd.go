package quad

import (
	"fmt"
	"strconv"
)

// Well-known XSD datatype IRIs recognised by LiteralFromXSD.
const (
	XSDString  = IRI("http://www.w3.org/2001/XMLSchema#string")
	XSDInteger = IRI("http://www.w3.org/2001/XMLSchema#integer")
)

// ErrUnsupportedLiteral is returned by LiteralFromXSD for any
// datatype other than xsd:string and xsd:integer; those are reserved
// per the data model and must hard-fail rather than degrade silently.
type ErrUnsupportedLiteral struct {
	Datatype IRI
}

func (e *ErrUnsupportedLiteral) Error() string {
	return fmt.Sprintf("unsupported literal datatype %q", string(e.Datatype))
}

// LiteralFromXSD converts a lexical value under a given XSD datatype
// IRI into a Literal. xsd:string produces String, xsd:integer
// produces UInt64; any other datatype is an ErrUnsupportedLiteral.
func LiteralFromXSD(value string, datatype IRI) (Literal, error) {
	switch datatype {
	case XSDString, "":
		return String(value), nil
	case XSDInteger:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return Literal{}, fmt.Errorf("parse xsd:integer %q: %w", value, err)
		}
		return UInt64(n), nil
	default:
		return Literal{}, &ErrUnsupportedLiteral{Datatype: datatype}
	}
}
