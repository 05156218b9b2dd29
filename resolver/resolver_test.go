package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARGA-Genomes/arga-transformer/mapping"
	"github.com/ARGA-Genomes/arga-transformer/quad"
	"github.com/ARGA-Genomes/arga-transformer/store"
)

func sameQuad(field, source, graph quad.IRI) quad.Quad {
	return quad.Quad{Subject: field, Predicate: mapping.PredicateSame, Object: source, Graph: graph}
}

func rowQuad(subject string, predicate, graph quad.IRI, value quad.Literal) quad.Quad {
	return quad.Quad{Subject: quad.String(subject), Predicate: predicate, Object: value, Graph: graph}
}

// TestS1SingleSame grounds Scenario S1: a direct `same` mapping.
func TestS1SingleSame(t *testing.T) {
	s := store.New()
	names := quad.IRI("ex:names")
	src := quad.IRI("source:assemblies.csv")
	canonicalName := quad.IRI("fields:canonical_name")
	sourceName := quad.IRI("source:species_name")

	s.Insert(sameQuad(canonicalName, sourceName, names))
	s.Insert(rowQuad("0", sourceName, src, quad.String("Felis catus")))

	r := New(s)
	out, err := r.Resolve([]quad.IRI{canonicalName}, []quad.IRI{names, src})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, []quad.Literal{quad.String("Felis catus")}, out[quad.String("0")][canonicalName])
}

// TestS2CombinesAndAmbiguity grounds Scenario S2.
func TestS2CombinesAndAmbiguity(t *testing.T) {
	buildStore := func() (*store.Store, quad.IRI, quad.IRI, quad.IRI) {
		s := store.New()
		organisms := quad.IRI("ex:organisms")
		src := quad.IRI("source:organisms.csv")
		scientificName := quad.IRI("fields:scientific_name")
		genus := quad.IRI("source:genus")
		species := quad.IRI("source:species")

		list := quad.BNode("list0")
		tail := quad.BNode("list1")
		s.Insert(quad.Quad{Subject: scientificName, Predicate: mapping.PredicateCombines, Object: list, Graph: organisms})
		s.Insert(quad.Quad{Subject: list, Predicate: quad.RDFFirst, Object: genus, Graph: organisms})
		s.Insert(quad.Quad{Subject: list, Predicate: quad.RDFRest, Object: tail, Graph: organisms})
		s.Insert(quad.Quad{Subject: tail, Predicate: quad.RDFFirst, Object: species, Graph: organisms})
		s.Insert(quad.Quad{Subject: tail, Predicate: quad.RDFRest, Object: quad.RDFNil, Graph: organisms})
		s.Insert(sameQuad(genus, genus, organisms))
		s.Insert(sameQuad(species, species, organisms))

		s.Insert(rowQuad("0", genus, src, quad.String("Felis")))
		s.Insert(rowQuad("0", species, src, quad.String("catus")))
		return s, organisms, src, scientificName
	}

	t.Run("combines two fields", func(t *testing.T) {
		s, organisms, src, scientificName := buildStore()
		r := New(s)
		out, err := r.Resolve([]quad.IRI{scientificName}, []quad.IRI{organisms, src})
		require.NoError(t, err)
		require.Equal(t, []quad.Literal{quad.String("Felis catus")}, out[quad.String("0")][scientificName])
	})

	t.Run("ambiguous second genus value fails", func(t *testing.T) {
		s, organisms, src, scientificName := buildStore()
		genus := quad.IRI("source:genus")
		s.Insert(rowQuad("0", genus, src, quad.String("Canis")))

		r := New(s)
		_, err := r.Resolve([]quad.IRI{scientificName}, []quad.IRI{organisms, src})
		require.Error(t, err)
		rerr, ok := err.(*Error)
		require.True(t, ok)
		require.Equal(t, KindAmbiguousMapping, rerr.Kind)
		require.Equal(t, genus, rerr.IRI)
		require.ElementsMatch(t, []string{"Felis", "Canis"}, rerr.Values)
	})
}

// TestS3WhenFilter grounds Scenario S3.
func TestS3WhenFilter(t *testing.T) {
	s := store.New()
	graph := quad.IRI("ex:names")
	src := quad.IRI("source:rows.csv")
	canonicalName := quad.IRI("fields:canonical_name")
	sourceName := quad.IRI("source:species_name")
	status := quad.IRI("source:status")

	s.Insert(sameQuad(canonicalName, sourceName, graph))
	s.Insert(sameQuad(status, status, graph))
	s.Insert(quad.Quad{
		Subject:   canonicalName,
		Predicate: mapping.PredicateWhen,
		Object:    quad.Triple{Subject: status, Predicate: mapping.PredicateIs, Object: quad.String("Full")},
		Graph:     graph,
	})

	s.Insert(rowQuad("0", sourceName, src, quad.String("Felis catus")))
	s.Insert(rowQuad("0", status, src, quad.String("Full")))
	s.Insert(rowQuad("1", sourceName, src, quad.String("Canis lupus")))
	s.Insert(rowQuad("1", status, src, quad.String("Draft")))
	s.Insert(rowQuad("2", sourceName, src, quad.String("Equus ferus")))

	r := New(s)
	out, err := r.Resolve([]quad.IRI{canonicalName}, []quad.IRI{graph, src})
	require.NoError(t, err)

	_, has0 := out[quad.String("0")]
	_, has1 := out[quad.String("1")]
	_, has2 := out[quad.String("2")]
	require.True(t, has0, "record with matching status is retained")
	require.False(t, has1, "record with non-matching status is dropped")
	require.True(t, has2, "record with no status quad at all is retained (open-world)")
}

// TestS4LinkedJoin grounds Scenario S4.
func TestS4LinkedJoin(t *testing.T) {
	s := store.New()

	tissues := quad.IRI("ex:tissues")
	tissueSrc := quad.IRI("source:tissues.csv")
	subsamples := quad.IRI("ex:subsamples")
	subsampleSrc := quad.IRI("source:subsamples.csv")

	scientificName := quad.IRI("fields:scientific_name")
	tissueID := quad.IRI("fields:tissue_id")
	tissueSourceName := quad.IRI("source:sci_name")
	tissueSourceID := quad.IRI("source:tissue_id_col")
	subsampleSourceTissueID := quad.IRI("source:tissue_ref")

	// Tissues domain: ordinary same mappings into its own source data.
	s.Insert(sameQuad(scientificName, tissueSourceName, tissues))
	s.Insert(sameQuad(tissueID, tissueSourceID, tissues))
	s.Insert(rowQuad("t0", tissueSourceName, tissueSrc, quad.String("Felis catus")))
	s.Insert(rowQuad("t0", tissueSourceID, tissueSrc, quad.String("T1")))

	// transforms_into is a global schema declaration in the default graph:
	// tissueSrc feeds the tissues canonical graph.
	s.Insert(quad.Quad{Subject: tissueSrc, Predicate: mapping.PredicateTransformsInto, Object: tissues})

	// Subsamples domain: tissue_id mapped directly, scientific_name via from/via.
	s.Insert(sameQuad(tissueID, subsampleSourceTissueID, subsamples))
	s.Insert(quad.Quad{
		Subject:   scientificName,
		Predicate: mapping.PredicateFrom,
		Object:    quad.Triple{Subject: tissues, Predicate: mapping.PredicateVia, Object: tissueID},
		Graph:     subsamples,
	})
	s.Insert(rowQuad("0", subsampleSourceTissueID, subsampleSrc, quad.String("T1")))

	r := New(s)
	out, err := r.Resolve([]quad.IRI{scientificName, tissueID}, []quad.IRI{subsamples, subsampleSrc})
	require.NoError(t, err)
	require.Equal(t, []quad.Literal{quad.String("Felis catus")}, out[quad.String("0")][scientificName])
	// tissueID is both directly scanned from the subsample's own row and
	// re-merged by the linked join (the join copies the entire inner
	// ValueMap, via field included), so it appears at least once.
	require.Contains(t, out[quad.String("0")][tissueID], quad.String("T1"))
}

// TestS5HashFirst grounds Scenario S5.
func TestS5HashFirst(t *testing.T) {
	s := store.New()
	graph := quad.IRI("ex:deposition")
	src := quad.IRI("source:deposition.csv")
	accessionField := quad.IRI("fields:accession_hash")
	accession := quad.IRI("source:accession")
	altAccession := quad.IRI("source:alt_accession")

	list := quad.BNode("list0")
	tail := quad.BNode("list1")
	s.Insert(quad.Quad{Subject: accessionField, Predicate: mapping.PredicateHashFirst, Object: list, Graph: graph})
	s.Insert(quad.Quad{Subject: list, Predicate: quad.RDFFirst, Object: accession, Graph: graph})
	s.Insert(quad.Quad{Subject: list, Predicate: quad.RDFRest, Object: tail, Graph: graph})
	s.Insert(quad.Quad{Subject: tail, Predicate: quad.RDFFirst, Object: altAccession, Graph: graph})
	s.Insert(quad.Quad{Subject: tail, Predicate: quad.RDFRest, Object: quad.RDFNil, Graph: graph})
	s.Insert(sameQuad(accession, accession, graph))
	s.Insert(sameQuad(altAccession, altAccession, graph))

	s.Insert(rowQuad("0", accession, src, quad.String("")))
	s.Insert(rowQuad("0", altAccession, src, quad.String("XYZ")))

	r := New(s)
	out, err := r.Resolve([]quad.IRI{accessionField}, []quad.IRI{graph, src})
	require.NoError(t, err)
	require.Equal(t, hashLiteral(quad.String("XYZ")), out[quad.String("0")][accessionField][0])
}

// TestIdempotentInsert covers invariant 2.
func TestIdempotentInsert(t *testing.T) {
	s := store.New()
	graph := quad.IRI("ex:names")
	src := quad.IRI("source:rows.csv")
	canonicalName := quad.IRI("fields:canonical_name")
	sourceName := quad.IRI("source:species_name")

	s.Insert(sameQuad(canonicalName, sourceName, graph))
	rq := rowQuad("0", sourceName, src, quad.String("Felis catus"))
	s.Insert(rq)
	s.Insert(rq)
	s.Insert(rq)

	r := New(s)
	out, err := r.Resolve([]quad.IRI{canonicalName}, []quad.IRI{graph, src})
	require.NoError(t, err)
	require.Equal(t, []quad.Literal{quad.String("Felis catus")}, out[quad.String("0")][canonicalName])
}

// TestScopeExclusion covers invariant 3: a quad outside scope
// contributes nothing.
func TestScopeExclusion(t *testing.T) {
	s := store.New()
	graph := quad.IRI("ex:names")
	inScope := quad.IRI("source:in.csv")
	outOfScope := quad.IRI("source:out.csv")
	canonicalName := quad.IRI("fields:canonical_name")
	sourceName := quad.IRI("source:species_name")

	s.Insert(sameQuad(canonicalName, sourceName, graph))
	s.Insert(rowQuad("0", sourceName, inScope, quad.String("Felis catus")))
	s.Insert(rowQuad("0", sourceName, outOfScope, quad.String("Canis lupus")))

	r := New(s)
	out, err := r.Resolve([]quad.IRI{canonicalName}, []quad.IRI{graph, inScope})
	require.NoError(t, err)
	require.Equal(t, []quad.Literal{quad.String("Felis catus")}, out[quad.String("0")][canonicalName])
}

// TestHashDeterminism covers invariant 6.
func TestHashDeterminism(t *testing.T) {
	require.Equal(t, hashLiteral(quad.String("XYZ")), hashLiteral(quad.String("XYZ")))
	require.NotEqual(t, hashLiteral(quad.String("XYZ")), hashLiteral(quad.String("ABC")))
}

// TestCollectIRIsRejectsCycle covers the §9 cyclic-list design note: the
// original source has no such guard, so the port must.
func TestCollectIRIsRejectsCycle(t *testing.T) {
	s := store.New()
	graph := quad.IRI("ex:names")
	field := quad.IRI("fields:cyclic")
	a := quad.BNode("a")
	b := quad.BNode("b")

	s.Insert(quad.Quad{Subject: field, Predicate: mapping.PredicateCombines, Object: a, Graph: graph})
	s.Insert(quad.Quad{Subject: a, Predicate: quad.RDFFirst, Object: quad.IRI("source:x"), Graph: graph})
	s.Insert(quad.Quad{Subject: a, Predicate: quad.RDFRest, Object: b, Graph: graph})
	s.Insert(quad.Quad{Subject: b, Predicate: quad.RDFFirst, Object: quad.IRI("source:y"), Graph: graph})
	s.Insert(quad.Quad{Subject: b, Predicate: quad.RDFRest, Object: a, Graph: graph}) // cycle back to a

	r := New(s)
	_, err := r.Resolve([]quad.IRI{field}, []quad.IRI{graph})
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindInvalidMappingIRI, rerr.Kind)
}

// TestUnrecognisedOperatorIsHardFailure covers §9's open question: no
// silent skipping of malformed mapping shapes.
func TestUnrecognisedOperatorIsHardFailure(t *testing.T) {
	s := store.New()
	graph := quad.IRI("ex:names")
	field := quad.IRI("fields:broken")

	s.Insert(quad.Quad{Subject: field, Predicate: mapping.PredicateSame, Object: quad.String("not-an-iri"), Graph: graph})

	r := New(s)
	_, err := r.Resolve([]quad.IRI{field}, []quad.IRI{graph})
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindInvalidMappingIRI, rerr.Kind)

	// An operator IRI outside the mapping vocabulary fails the same way.
	bogus := quad.IRI("fields:bogus")
	s.Insert(quad.Quad{Subject: bogus, Predicate: quad.IRI(mapping.Namespace + "bogus"), Object: quad.IRI("source:x"), Graph: graph})
	_, err = r.Resolve([]quad.IRI{bogus}, []quad.IRI{graph})
	require.Error(t, err)
	rerr, ok = err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindInvalidMappingIRI, rerr.Kind)
}
