// Package resolver implements §4.F's core algorithm: interpreting the
// mapping DSL over a scope of graphs to produce, for a set of
// canonical field IRIs, a record_id → per-field literal-value map.
//
// Grounded on resolver.rs's Resolver.field_map/records/resolve split,
// generalized the way a graph path planner composes small, focused
// passes over an iterator rather than one monolithic function:
// buildFieldMap mirrors field_map(), scan+link mirrors records(), and
// the per-Map output pass mirrors resolve()'s own match arms — kept
// as three separate, testable stages.
package resolver

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zeebo/xxh3"

	"github.com/ARGA-Genomes/arga-transformer/clog"
	"github.com/ARGA-Genomes/arga-transformer/mapping"
	"github.com/ARGA-Genomes/arga-transformer/quad"
	"github.com/ARGA-Genomes/arga-transformer/store"
)

var log = clog.Component("resolver")

var metricResolves = promauto.NewCounter(prometheus.CounterOpts{
	Name: "argatransform_resolver_resolve_calls_total",
	Help: "Number of top-level Resolve calls.",
})

var metricResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "argatransform_resolver_resolve_duration_seconds",
	Help: "Duration of top-level Resolve calls.",
})

// FieldMap is the decoded mapping-operator table: canonical or source
// field IRI → the Maps asserted for it within scope.
type FieldMap map[quad.IRI][]mapping.Map

// ValueMap is a single record's per-field literal values.
type ValueMap map[quad.IRI][]quad.Literal

// RecordMap is the resolver's output: record_id (the row-subject
// literal) → its resolved canonical field values.
type RecordMap map[quad.Literal]ValueMap

// MaxLinkedJoinDepth bounds `from`/`via` recursion (§9 recommends ≥8).
const MaxLinkedJoinDepth = 8

// maxOperandListDepth guards against a malformed, non-terminating
// first/rest chain that never revisits a node (the visited-set check
// in collectIRIs already rejects true cycles).
const maxOperandListDepth = 4096

// Resolver holds an immutable reference to the store for the
// duration of a resolve (§5: no interior mutation is shared).
type Resolver struct {
	store *store.Store
}

// New returns a Resolver bound to s.
func New(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

// Resolve is the entry point: §4.F's 8-step algorithm over fields
// within scope.
func (r *Resolver) Resolve(fields []quad.IRI, scope []quad.IRI) (RecordMap, error) {
	metricResolves.Inc()
	start := time.Now()
	defer func() { metricResolveDuration.Observe(time.Since(start).Seconds()) }()
	out, err := r.resolve(fields, scope, 0)
	if err != nil {
		return nil, err
	}
	log.Infof("resolved %d fields over %d records", len(fields), len(out))
	return out, nil
}

type condEntry struct {
	subject quad.IRI
	cond    mapping.Condition
}

type fromEntry struct {
	key   quad.IRI
	graph quad.IRI
	via   quad.IRI
}

func (r *Resolver) resolve(fields []quad.IRI, scope []quad.IRI, depth int) (RecordMap, error) {
	if depth > MaxLinkedJoinDepth {
		return nil, errInvalidMappingIRI("", "from/via recursion exceeded maximum depth")
	}

	fm, err := r.buildFieldMap(fields, scope)
	if err != nil {
		return nil, err
	}
	if err := validateOperandShapes(fields, fm); err != nil {
		return nil, err
	}

	reverse := map[quad.IRI][]quad.IRI{}
	var conditions []condEntry
	var froms []fromEntry
	linkedVia := map[quad.IRI]bool{}

	for key, maps := range fm {
		for _, m := range maps {
			switch m.Op {
			case mapping.OpSame, mapping.OpHash:
				reverse[m.IRI] = append(reverse[m.IRI], key)
			case mapping.OpCombines, mapping.OpHashFirst:
				for _, iri := range m.List {
					reverse[iri] = append(reverse[iri], key)
				}
			case mapping.OpWhen:
				conditions = append(conditions, condEntry{subject: m.When.Subject, cond: m.When})
			case mapping.OpFrom:
				froms = append(froms, fromEntry{key: key, graph: m.From.Graph, via: m.From.Via})
				linkedVia[m.From.Via] = true
			}
		}
	}

	terms := map[quad.IRI]bool{}
	for iri := range reverse {
		terms[iri] = true
	}
	for _, c := range conditions {
		terms[c.subject] = true
	}
	for _, fo := range froms {
		terms[fo.via] = true
	}

	raw := map[quad.Literal]map[quad.IRI][]quad.Literal{}
	recordLinks := map[quad.IRI]map[quad.Literal][]quad.Literal{}

	if len(terms) > 0 {
		var termVals []quad.Value
		for t := range terms {
			termVals = append(termVals, t)
		}
		quads := r.store.Match(store.AnyPattern(), store.SetPattern(termVals...), store.AnyPattern(), store.ExactlyOneOf(scope...))
		for _, q := range quads {
			subj, ok := q.Subject.(quad.Literal)
			if !ok {
				log.Warningf("rejecting quad with non-literal row subject: %v", q)
				return nil, errUnsupportedSubject("row subject is not a literal")
			}
			obj, ok := q.Object.(quad.Literal)
			if !ok {
				log.Warningf("rejecting quad with non-literal row object: %v", q)
				return nil, errUnsupportedSubject("row object is not a literal")
			}
			predIRI, ok := q.Predicate.(quad.IRI)
			if !ok {
				log.Warningf("rejecting quad with non-IRI row predicate: %v", q)
				return nil, errUnsupportedSubject("row predicate is not an IRI")
			}
			canonicalIRIs, ok := reverse[predIRI]
			if !ok {
				log.Warningf("field mapping not found for %s", predIRI)
				return nil, errIRINotFound(predIRI)
			}
			bucket := raw[subj]
			if bucket == nil {
				bucket = map[quad.IRI][]quad.Literal{}
				raw[subj] = bucket
			}
			for _, cIRI := range canonicalIRIs {
				bucket[cIRI] = append(bucket[cIRI], obj)
				if linkedVia[cIRI] {
					if recordLinks[cIRI] == nil {
						recordLinks[cIRI] = map[quad.Literal][]quad.Literal{}
					}
					recordLinks[cIRI][obj] = append(recordLinks[cIRI][obj], subj)
				}
			}
		}
	}

	// Step 5: linked join.
	for _, fe := range froms {
		models := r.transformsInto(fe.graph)
		models = append(models, fe.graph)
		linked, err := r.resolve([]quad.IRI{fe.key, fe.via}, models, depth+1)
		if err != nil {
			return nil, err
		}
		for _, values := range linked {
			viaValues, ok := values[fe.via]
			if !ok || len(viaValues) == 0 {
				continue
			}
			vv := viaValues[0]
			rows := recordLinks[fe.via][vv]
			for _, row := range rows {
				bucket := raw[row]
				if bucket == nil {
					bucket = map[quad.IRI][]quad.Literal{}
					raw[row] = bucket
				}
				for iri, vs := range values {
					bucket[iri] = append(bucket[iri], vs...)
				}
			}
		}
	}

	// Step 6: apply operators to produce output, per requested field.
	out := RecordMap{}
	for subj, bucket := range raw {
		for _, f := range fields {
			for _, m := range fm[f] {
				values, err := applyMap(bucket, f, m)
				if err != nil {
					return nil, err
				}
				if len(values) == 0 {
					continue
				}
				rec := out[subj]
				if rec == nil {
					rec = ValueMap{}
					out[subj] = rec
				}
				rec[f] = append(rec[f], values...)
			}
		}
	}

	// Step 7: filter by `when`. Conditions reference source-field
	// buckets on the unnarrowed per-record data, not the narrowed
	// per-requested-field output, so they're checked against raw.
	for subj := range raw {
		bucket := raw[subj]
		keep := true
		for _, c := range conditions {
			values, ok := bucket[c.subject]
			if !ok {
				continue
			}
			for _, v := range values {
				if !c.cond.Check(v) {
					keep = false
					break
				}
			}
			if !keep {
				break
			}
		}
		if !keep {
			delete(out, subj)
		}
	}

	return out, nil
}

// validateOperandShapes enforces §4.F.2: every IRI listed inside a
// requested field's combines/hash_first operand list must itself
// carry a `same` mapping in field_map — any other shape is rejected
// up front rather than silently treated as absent.
func validateOperandShapes(fields []quad.IRI, fm FieldMap) error {
	for _, f := range fields {
		for _, m := range fm[f] {
			if m.Op != mapping.OpCombines && m.Op != mapping.OpHashFirst {
				continue
			}
			for _, iri := range m.List {
				sub, ok := fm[iri]
				if !ok {
					return errIRINotFound(iri)
				}
				for _, sm := range sub {
					if sm.Op != mapping.OpSame {
						return errUnsupportedMapping(iri, "combines/hash_first operand must carry a same mapping")
					}
				}
			}
		}
	}
	return nil
}

func applyMap(bucket map[quad.IRI][]quad.Literal, f quad.IRI, m mapping.Map) ([]quad.Literal, error) {
	switch m.Op {
	case mapping.OpSame:
		return bucket[f], nil
	case mapping.OpHash:
		out := make([]quad.Literal, 0, len(bucket[f]))
		for _, v := range bucket[f] {
			out = append(out, hashLiteral(v))
		}
		return out, nil
	case mapping.OpHashFirst:
		for _, iri := range m.List {
			vs := bucket[iri]
			if len(vs) > 0 && vs[0].Text() != "" {
				return []quad.Literal{hashLiteral(vs[0])}, nil
			}
		}
		return nil, nil
	case mapping.OpCombines:
		var parts []string
		for _, iri := range m.List {
			vs := bucket[iri]
			var present []string
			for _, v := range vs {
				if v.Text() != "" {
					present = append(present, v.Text())
				}
			}
			if len(present) > 1 {
				return nil, errAmbiguousMapping(iri, present)
			}
			if len(present) == 1 {
				parts = append(parts, present[0])
			}
		}
		return []quad.Literal{quad.String(strings.Join(parts, " "))}, nil
	case mapping.OpFrom:
		// Values merged into the bucket by the step-5 linked join.
		return bucket[f], nil
	case mapping.OpWhen:
		return nil, nil
	default:
		return nil, nil
	}
}

func hashLiteral(v quad.Literal) quad.Literal {
	return quad.UInt64(xxh3.HashString(v.Text()))
}

// transformsInto returns the subject IRIs of every
// `mapping:transforms_into` quad in the default graph that targets
// graph — i.e. every source graph feeding the canonical model graph.
// These are global schema declarations, not data scoped to any one
// named graph, so they're asserted in the default graph.
func (r *Resolver) transformsInto(target quad.IRI) []quad.IRI {
	quads := r.store.Match(store.AnyPattern(), store.ExactPattern(mapping.PredicateTransformsInto), store.ExactPattern(target), store.DefaultOnly())
	var out []quad.IRI
	for _, q := range quads {
		if iri, ok := q.Subject.(quad.IRI); ok {
			out = append(out, iri)
		}
	}
	return out
}

// buildFieldMap resolves §4.F.1: the transitive closure of mapping
// facts reachable from fields through Combines/HashFirst operand
// lists and When/From references. Leaf source fields referenced
// inside an operand list, a `when` subject, or a `from`'s `via` must
// carry their own trivial self-mapping (conventionally a `same` to
// themselves) in the mapping document to be independently
// queryable — exactly the "only if that IRI itself has a same
// mapping in field_map" condition §4.F.2 describes.
func (r *Resolver) buildFieldMap(fields []quad.IRI, scope []quad.IRI) (FieldMap, error) {
	fm := FieldMap{}
	visited := map[quad.IRI]bool{}
	queue := append([]quad.IRI(nil), fields...)

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if visited[f] {
			continue
		}
		visited[f] = true

		quads := r.store.Match(store.ExactPattern(f), store.AnyPattern(), store.AnyPattern(), store.ExactlyOneOf(scope...))
		for _, q := range quads {
			m, refs, err := r.decodeMap(q)
			if err != nil {
				return nil, err
			}
			fm[f] = append(fm[f], m)
			for _, ref := range refs {
				if !visited[ref] {
					queue = append(queue, ref)
				}
			}
		}
	}
	return fm, nil
}

// decodeMap decodes a single mapping quad into its Map, plus any IRIs
// it references that should also gain their own field_map entry.
func (r *Resolver) decodeMap(q quad.Quad) (mapping.Map, []quad.IRI, error) {
	predIRI, ok := q.Predicate.(quad.IRI)
	if !ok {
		return mapping.Map{}, nil, errInvalidMappingIRI("", "mapping predicate is not an IRI")
	}
	op, ok := mapping.OperatorFromIRI(predIRI)
	if !ok {
		return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "unrecognised mapping operator")
	}

	switch op {
	case mapping.OpSame, mapping.OpHash:
		iri, ok := q.Object.(quad.IRI)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "expected an IRI operand")
		}
		return mapping.Map{Op: op, IRI: iri}, nil, nil

	case mapping.OpCombines, mapping.OpHashFirst:
		bn, ok := q.Object.(quad.BNode)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "expected an RDF list head")
		}
		g, ok := q.Graph.(quad.IRI)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "mapping quad is not in a named graph")
		}
		list, err := r.collectIRIs(bn, g)
		if err != nil {
			return mapping.Map{}, nil, err
		}
		return mapping.Map{Op: op, List: list}, list, nil

	case mapping.OpWhen:
		tr, ok := q.Object.(quad.Triple)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "expected an embedded (field :is literal) triple")
		}
		subj, ok := tr.Subject.(quad.IRI)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "when subject must be an IRI")
		}
		if predOf, ok := tr.Predicate.(quad.IRI); !ok || predOf != mapping.PredicateIs {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "when predicate must be mapping:is")
		}
		lit, ok := tr.Object.(quad.Literal)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "when object must be a literal")
		}
		return mapping.Map{Op: op, When: mapping.Condition{Subject: subj, Literal: lit}}, []quad.IRI{subj}, nil

	case mapping.OpFrom:
		tr, ok := q.Object.(quad.Triple)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "expected an embedded (graph :via field) triple")
		}
		graph, ok := tr.Subject.(quad.IRI)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "from graph must be an IRI")
		}
		if predOf, ok := tr.Predicate.(quad.IRI); !ok || predOf != mapping.PredicateVia {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "from predicate must be mapping:via")
		}
		via, ok := tr.Object.(quad.IRI)
		if !ok {
			return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "from via must be an IRI")
		}
		return mapping.Map{Op: op, From: mapping.FromCondition{Graph: graph, Via: via}}, []quad.IRI{via}, nil

	default:
		return mapping.Map{}, nil, errInvalidMappingIRI(predIRI, "unsupported mapping operator")
	}
}

// collectIRIs walks an RDF-list first/rest chain headed by bn within
// graph g, returning the ordered IRIs, per §4.F.1/§9. A revisited
// blank node or a chain exceeding maxOperandListDepth both fail as
// InvalidMappingIri.
func (r *Resolver) collectIRIs(bn quad.BNode, g quad.IRI) ([]quad.IRI, error) {
	visited := map[quad.BNode]bool{}
	var out []quad.IRI
	cur := bn

	for i := 0; ; i++ {
		if i > maxOperandListDepth {
			return nil, errInvalidMappingIRI(g, "operand list exceeds maximum depth")
		}
		if visited[cur] {
			return nil, errInvalidMappingIRI(g, "cyclic operand list")
		}
		visited[cur] = true

		quads := r.store.Match(store.ExactPattern(cur), store.AnyPattern(), store.AnyPattern(), store.ExactlyIri(g))
		var first *quad.IRI
		var rest *quad.BNode
		restNil := false
		restSeen := false
		for _, q := range quads {
			predIRI, ok := q.Predicate.(quad.IRI)
			if !ok {
				continue
			}
			switch predIRI {
			case quad.RDFFirst:
				if iri, ok := q.Object.(quad.IRI); ok {
					v := iri
					first = &v
				}
			case quad.RDFRest:
				restSeen = true
				if bnode, ok := q.Object.(quad.BNode); ok {
					v := bnode
					rest = &v
				} else if iri, ok := q.Object.(quad.IRI); ok && iri == quad.RDFNil {
					restNil = true
				}
			}
		}
		if first != nil {
			out = append(out, *first)
		}
		if restSeen && rest == nil && !restNil {
			return nil, errInvalidMappingIRI(g, "rdf:rest must be a blank node or rdf:nil")
		}
		if restNil || rest == nil {
			break
		}
		cur = *rest
	}
	return out, nil
}
