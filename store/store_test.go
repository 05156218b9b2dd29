package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARGA-Genomes/arga-transformer/quad"
)

func TestInsertIdempotent(t *testing.T) {
	s := New()
	q := quad.Quad{
		Subject:   quad.String("0"),
		Predicate: quad.IRI("http://arga.org.au/schemas/fields/canonical_name"),
		Object:    quad.String("Felis catus"),
		Graph:     quad.IRI("http://arga.org.au/source/assemblies.csv"),
	}
	s.Insert(q)
	s.Insert(q)
	require.Equal(t, 1, s.Len())
}

func TestMatchByGraphMatchers(t *testing.T) {
	s := New()
	named := quad.IRI("http://arga.org.au/source/assemblies.csv")
	s.Insert(quad.Quad{Subject: quad.String("0"), Predicate: quad.IRI("p"), Object: quad.String("v"), Graph: named})
	s.Insert(quad.Quad{Subject: quad.String("1"), Predicate: quad.IRI("p"), Object: quad.String("w"), Graph: nil})

	all := s.Match(AnyPattern(), AnyPattern(), AnyPattern(), AnyInSet(named))
	require.Len(t, all, 2, "AnyInSet must include the default graph and the named graph")

	namedOnly := s.Match(AnyPattern(), AnyPattern(), AnyPattern(), ExactlyOneOf(named))
	require.Len(t, namedOnly, 1)
	require.Equal(t, quad.String("0"), namedOnly[0].Subject)

	defaultOnly := s.Match(AnyPattern(), AnyPattern(), AnyPattern(), DefaultOnly())
	require.Len(t, defaultOnly, 1)
	require.Equal(t, quad.String("1"), defaultOnly[0].Subject)

	exact := s.Match(AnyPattern(), AnyPattern(), AnyPattern(), ExactlyIri(named))
	require.Len(t, exact, 1)
}

func TestMatchByPredicateSet(t *testing.T) {
	s := New()
	g := quad.IRI("http://arga.org.au/source/x.csv")
	s.Insert(quad.Quad{Subject: quad.String("0"), Predicate: quad.IRI("a"), Object: quad.String("1"), Graph: g})
	s.Insert(quad.Quad{Subject: quad.String("0"), Predicate: quad.IRI("b"), Object: quad.String("2"), Graph: g})
	s.Insert(quad.Quad{Subject: quad.String("0"), Predicate: quad.IRI("c"), Object: quad.String("3"), Graph: g})

	got := s.Match(AnyPattern(), Pattern{Set: map[string]bool{"<a>": true, "<c>": true}}, AnyPattern(), ExactlyOneOf(g))
	require.Len(t, got, 2)
}
