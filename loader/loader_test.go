package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARGA-Genomes/arga-transformer/mapping"
	"github.com/ARGA-Genomes/arga-transformer/quad"
	"github.com/ARGA-Genomes/arga-transformer/reader"
	"github.com/ARGA-Genomes/arga-transformer/store"
)

func TestLoadTriGInsertsQuads(t *testing.T) {
	s := store.New()
	doc := `
@prefix fields: <http://arga.org.au/schemas/fields/> .
@prefix map: <http://arga.org.au/schemas/mapping/> .
@prefix ex: <http://arga.org.au/schemas/mapping/ex#> .
ex:names {
  fields:canonical_name map:same ex:species_name .
}
`
	n, err := LoadTriG(s, strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, s.Len())
}

func TestLoadTriGIsAllOrNothing(t *testing.T) {
	s := store.New()
	doc := `
@prefix fields: <http://arga.org.au/schemas/fields/> .
@prefix map: <http://arga.org.au/schemas/mapping/> .
fields:a map:same fields:b .
fields:c map:same
`
	_, err := LoadTriG(s, strings.NewReader(doc))
	require.Error(t, err)
	require.Equal(t, 0, s.Len())
}

func TestLoadRowsSynthesisesSourceGraph(t *testing.T) {
	s := store.New()
	rows := reader.NewCSVReader(strings.NewReader("species_name\nFelis catus\n"))

	n, err := LoadRows(s, rows, "assemblies.csv", "http://arga.org.au/schemas/fields/")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	quads := s.Match(store.AnyPattern(), store.AnyPattern(), store.AnyPattern(),
		store.ExactlyIri(SourceGraph("assemblies.csv")))
	require.Len(t, quads, 1)
	require.Equal(t, quad.String("0"), quads[0].Subject)
	require.Equal(t, quad.IRI("http://arga.org.au/schemas/fields/species_name"), quads[0].Predicate)
	require.Equal(t, quad.String("Felis catus"), quads[0].Object)
}

func TestLoadRowsSkipsEmptyValues(t *testing.T) {
	s := store.New()
	rows := reader.NewCSVReader(strings.NewReader("species_name,notes\nFelis catus,\n"))

	n, err := LoadRows(s, rows, "assemblies.csv", "http://arga.org.au/schemas/fields/")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	quads := s.Match(store.AnyPattern(), store.AnyPattern(), store.AnyPattern(),
		store.ExactlyIri(SourceGraph("assemblies.csv")))
	require.Len(t, quads, 1)
	require.Equal(t, quad.IRI("http://arga.org.au/schemas/fields/species_name"), quads[0].Predicate)
}

func TestDatasetScopeIncludesTransformsInto(t *testing.T) {
	s := store.New()
	d := New(s, "http://arga.org.au/schemas/mapping/")
	tissues := d.CanonicalGraph("tissues")
	source := SourceGraph("tissues.csv")

	s.Insert(quad.Quad{Subject: source, Predicate: mapping.PredicateTransformsInto, Object: tissues})

	scope := d.Scope("tissues")
	require.ElementsMatch(t, []quad.IRI{tissues, source}, scope)
}
