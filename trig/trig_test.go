package trig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARGA-Genomes/arga-transformer/quad"
)

func TestParseBareDefaultGraphTriple(t *testing.T) {
	doc := `
@prefix fields: <http://arga.org.au/schemas/fields/> .
@prefix ex: <http://arga.org.au/schemas/mapping/ex#> .
ex:canonical_name <http://arga.org.au/schemas/mapping/same> fields:canonical_name .
`
	quads, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, quads, 1)
	q := quads[0]
	require.True(t, q.InDefaultGraph())
	require.Equal(t, quad.IRI("http://arga.org.au/schemas/mapping/ex#canonical_name"), q.Subject)
	require.Equal(t, quad.IRI("http://arga.org.au/schemas/fields/canonical_name"), q.Object)
}

func TestParseNamedGraphBlock(t *testing.T) {
	doc := `
@prefix ex: <http://arga.org.au/schemas/mapping/ex#> .
@prefix map: <http://arga.org.au/schemas/mapping/> .
ex:names {
  ex:canonical_name map:same ex:species_name .
  ex:species_name map:same ex:species_name .
}
`
	quads, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, quads, 2)
	for _, q := range quads {
		require.Equal(t, quad.IRI("http://arga.org.au/schemas/mapping/ex#names"), q.Graph)
	}
}

func TestParseRDFCollection(t *testing.T) {
	doc := `
@prefix ex: <http://arga.org.au/schemas/mapping/ex#> .
@prefix map: <http://arga.org.au/schemas/mapping/> .
ex:names {
  ex:scientific_name map:combines ( ex:genus ex:species ) .
}
`
	quads, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	// Expect one `combines` quad plus two rdf:first/rdf:rest pairs for
	// the two-item list (4 quads), all attached to the ex:names graph.
	require.Len(t, quads, 5)

	var combines *quad.Quad
	firsts := map[quad.Value]quad.Value{}
	rests := map[quad.Value]quad.Value{}
	for i := range quads {
		q := quads[i]
		require.Equal(t, quad.IRI("http://arga.org.au/schemas/mapping/ex#names"), q.Graph)
		switch q.Predicate {
		case quad.IRI("http://arga.org.au/schemas/mapping/combines"):
			combines = &quads[i]
		case quad.RDFFirst:
			firsts[q.Subject] = q.Object
		case quad.RDFRest:
			rests[q.Subject] = q.Object
		}
	}
	require.NotNil(t, combines)
	head, ok := combines.Object.(quad.BNode)
	require.True(t, ok, "combines object must be the list head blank node")

	require.Equal(t, quad.IRI("http://arga.org.au/schemas/mapping/ex#genus"), firsts[head])
	next, ok := rests[head].(quad.BNode)
	require.True(t, ok, "first rdf:rest must point at the second list node")
	require.Equal(t, quad.IRI("http://arga.org.au/schemas/mapping/ex#species"), firsts[next])
	require.Equal(t, quad.RDFNil, rests[next])
}

func TestParseEmbeddedTripleForWhen(t *testing.T) {
	doc := `
@prefix ex: <http://arga.org.au/schemas/mapping/ex#> .
@prefix map: <http://arga.org.au/schemas/mapping/> .
ex:names {
  ex:canonical_name map:when << ex:status map:is "accepted" >> .
}
`
	quads, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, quads, 1)

	tr, ok := quads[0].Object.(quad.Triple)
	require.True(t, ok, "when object must be an embedded triple")
	require.Equal(t, quad.IRI("http://arga.org.au/schemas/mapping/ex#status"), tr.Subject)
	require.Equal(t, quad.IRI("http://arga.org.au/schemas/mapping/is"), tr.Predicate)
	require.Equal(t, quad.String("accepted"), tr.Object)
}

func TestParseIntegerDatatypeLiteral(t *testing.T) {
	doc := `
@prefix ex: <http://arga.org.au/schemas/mapping/ex#> .
ex:subject ex:predicate "42"^^<http://www.w3.org/2001/XMLSchema#integer> .
`
	quads, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, quads, 1)
	lit, ok := quads[0].Object.(quad.Literal)
	require.True(t, ok)
	n, ok := lit.Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(42), n)
}

func TestParseUnsupportedDatatypeIsHardFailure(t *testing.T) {
	doc := `
@prefix ex: <http://arga.org.au/schemas/mapping/ex#> .
ex:subject ex:predicate "2026-01-01"^^<http://www.w3.org/2001/XMLSchema#date> .
`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
}

func TestParseUndeclaredPrefixIsHardFailure(t *testing.T) {
	doc := `ex:subject ex:predicate ex:object .`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
}

func TestParseCommentsAreIgnored(t *testing.T) {
	doc := `
# a leading comment
@prefix ex: <http://arga.org.au/schemas/mapping/ex#> . # trailing comment
ex:subject ex:predicate "value" . # another comment
`
	quads, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, quads, 1)
	require.Equal(t, quad.String("value"), quads[0].Object)
}
