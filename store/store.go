// Package store implements the in-memory, append-only quad store:
// insertion, duplicate-suppressing, and pattern-based iteration over
// (subject, predicate, object, graph) quads.
//
// graph/memstore's quadstore keeps per-direction B-tree indices over
// interned integer node IDs to support a mutable, concurrently-queried
// backend. This store has no such requirements
// (§5: single-threaded, blocking, append-only, no deletions), so it
// keeps one flat slice of quads plus per-direction value indices
// mapping a term's string form to the quad indices it appears in —
// enough to make predicate/graph-scoped scans cheap without the
// B-tree machinery a persistent, concurrent backend needs.
package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ARGA-Genomes/arga-transformer/quad"
)

var metricInserts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "argatransform_store_quads_inserted_total",
	Help: "Number of quads accepted by Insert (duplicates excluded).",
})

// Store holds quads in insertion order and indexes them by each
// term's textual form for fast pattern matching.
type Store struct {
	quads []quad.Quad
	seen  map[quadKey]int // quadKey -> index into quads, for idempotent insert

	bySubject   map[string][]int
	byPredicate map[string][]int
	byObject    map[string][]int
}

type quadKey struct {
	s, p, o, g string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		seen:        make(map[quadKey]int),
		bySubject:   make(map[string][]int),
		byPredicate: make(map[string][]int),
		byObject:    make(map[string][]int),
	}
}

func keyOf(q quad.Quad) quadKey {
	k := quadKey{s: q.Subject.String(), p: q.Predicate.String(), o: q.Object.String()}
	if q.Graph != nil {
		k.g = q.Graph.String()
	}
	return k
}

// Insert adds a quad to the store. Re-inserting an identical quad is
// a no-op (idempotent), per §3's lifecycle invariant.
func (s *Store) Insert(q quad.Quad) {
	k := keyOf(q)
	if _, ok := s.seen[k]; ok {
		return
	}
	idx := len(s.quads)
	s.quads = append(s.quads, q)
	s.seen[k] = idx

	s.bySubject[q.Subject.String()] = append(s.bySubject[q.Subject.String()], idx)
	s.byPredicate[q.Predicate.String()] = append(s.byPredicate[q.Predicate.String()], idx)
	s.byObject[q.Object.String()] = append(s.byObject[q.Object.String()], idx)
	metricInserts.Inc()
}

// Len reports the number of distinct quads held.
func (s *Store) Len() int { return len(s.quads) }

// All returns every quad in insertion order, for callers (chiefly the
// CLI's dump path) that need the whole store rather than a pattern
// match.
func (s *Store) All() []quad.Quad {
	return append([]quad.Quad(nil), s.quads...)
}

// Pattern is a single quad-position matcher: Any matches every term,
// a non-nil Term matches exactly that term, and a non-empty Set
// matches any term whose string form is in the set.
type Pattern struct {
	Term quad.Value
	Set  map[string]bool
}

// AnyPattern matches every term in a position.
func AnyPattern() Pattern { return Pattern{} }

// ExactPattern matches only the given term.
func ExactPattern(v quad.Value) Pattern { return Pattern{Term: v} }

// SetPattern matches any term whose string form is a member of vs.
func SetPattern(vs ...quad.Value) Pattern {
	set := make(map[string]bool, len(vs))
	for _, v := range vs {
		set[v.String()] = true
	}
	return Pattern{Set: set}
}

func (p Pattern) isAny() bool { return p.Term == nil && p.Set == nil }

func (p Pattern) matches(v quad.Value) bool {
	if p.isAny() {
		return true
	}
	if p.Term != nil {
		return p.Term.String() == v.String()
	}
	return p.Set[v.String()]
}

// GraphNameMatcher selects which graphs (including, optionally, the
// default graph) are in scope for a match.
type GraphNameMatcher struct {
	kind graphMatcherKind
	set  map[string]bool
	one  string
}

type graphMatcherKind uint8

const (
	gmAnyInSet graphMatcherKind = iota
	gmExactlyOneOf
	gmExactlyIri
	gmDefaultOnly
)

// AnyInSet includes the default graph and any named graph in iris —
// the "partial union" used when collecting resolved data.
func AnyInSet(iris ...quad.IRI) GraphNameMatcher {
	return GraphNameMatcher{kind: gmAnyInSet, set: iriSet(iris)}
}

// ExactlyOneOf includes only the named graphs in iris; the default
// graph is excluded. Used for mapping-graph traversals and
// source-exclusive scans.
func ExactlyOneOf(iris ...quad.IRI) GraphNameMatcher {
	return GraphNameMatcher{kind: gmExactlyOneOf, set: iriSet(iris)}
}

// ExactlyIri includes only the single named graph iri.
func ExactlyIri(iri quad.IRI) GraphNameMatcher {
	return GraphNameMatcher{kind: gmExactlyIri, one: string(iri)}
}

// DefaultOnly includes only the default graph.
func DefaultOnly() GraphNameMatcher {
	return GraphNameMatcher{kind: gmDefaultOnly}
}

func iriSet(iris []quad.IRI) map[string]bool {
	set := make(map[string]bool, len(iris))
	for _, iri := range iris {
		set[iri.String()] = true
	}
	return set
}

func (m GraphNameMatcher) matches(g quad.Value) bool {
	switch m.kind {
	case gmAnyInSet:
		if g == nil {
			return true
		}
		return m.set[g.String()]
	case gmExactlyOneOf:
		if g == nil {
			return false
		}
		return m.set[g.String()]
	case gmExactlyIri:
		return g != nil && g.String() == "<"+m.one+">"
	case gmDefaultOnly:
		return g == nil
	default:
		return false
	}
}

// Match returns every quad satisfying all four position patterns and
// the graph matcher. Results come back in insertion order, except for
// a predicate-set pattern, whose results are grouped per predicate in
// no fixed order; callers must not depend on the order (§5).
func (s *Store) Match(sp, pp, op Pattern, gm GraphNameMatcher) []quad.Quad {
	candidates := s.candidateIndices(sp, pp, op)
	out := make([]quad.Quad, 0, len(candidates))
	for _, idx := range candidates {
		q := s.quads[idx]
		if !sp.matches(q.Subject) || !pp.matches(q.Predicate) || !op.matches(q.Object) {
			continue
		}
		if !gm.matches(q.Graph) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// candidateIndices picks the cheapest available index to pre-filter
// on (predicate is the common hot path — mapping/resolver scans key
// off a fixed predicate set), falling back to a full scan when every
// position is "any".
func (s *Store) candidateIndices(sp, pp, op Pattern) []int {
	if pp.Term != nil {
		return s.byPredicate[pp.Term.String()]
	}
	if sp.Term != nil {
		return s.bySubject[sp.Term.String()]
	}
	if op.Term != nil {
		return s.byObject[op.Term.String()]
	}
	if pp.Set != nil {
		var idx []int
		for p := range pp.Set {
			idx = append(idx, s.byPredicate[p]...)
		}
		return idx
	}
	all := make([]int, len(s.quads))
	for i := range all {
		all[i] = i
	}
	return all
}
