// Package loader ingests mapping documents and row data into a quad
// store (§4.E): `LoadTriG` parses a TriG mapping document and inserts
// every resulting quad; `LoadRows` synthesizes a source graph from a
// stream of row triples. Dataset wraps a store with the map-prefix
// convention so callers can name canonical and source graphs, and
// compute a resolve scope, without repeating the IRI arithmetic.
package loader

import (
	"fmt"
	"io"

	"github.com/ARGA-Genomes/arga-transformer/clog"
	"github.com/ARGA-Genomes/arga-transformer/mapping"
	"github.com/ARGA-Genomes/arga-transformer/quad"
	"github.com/ARGA-Genomes/arga-transformer/reader"
	"github.com/ARGA-Genomes/arga-transformer/store"
	"github.com/ARGA-Genomes/arga-transformer/trig"
)

var log = clog.Component("loader")

// SourceNamespace is the prefix under which source graphs are named
// (§6: "http://arga.org.au/source/{source_name}").
const SourceNamespace = "http://arga.org.au/source/"

// LoadTriG parses a TriG mapping document and inserts every resulting
// quad into s. Parsing is all-or-nothing per document (§7): a
// malformed statement anywhere in r means nothing from it is
// inserted.
func LoadTriG(s *store.Store, r io.Reader) (int, error) {
	quads, err := trig.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("loader: load_trig: %w", err)
	}
	for _, q := range quads {
		s.Insert(q)
	}
	log.Infof("loaded %d mapping quads", len(quads))
	return len(quads), nil
}

// SourceGraph returns the source graph IRI a row source named
// sourceName is loaded under.
func SourceGraph(sourceName string) quad.IRI {
	return quad.IRI(SourceNamespace + sourceName)
}

// LoadRows synthesises the source graph IRI for sourceName and, for
// every non-empty (row_index, header, value) triple the reader yields,
// inserts `(row_index, schemaPrefix+header, value, source_graph)` —
// an empty value produces no quad (GLOSSARY: "Row quads"). It returns
// the count of quads inserted; a per-row reader error does not abort
// the load (§4.H: the reader itself is responsible for recovering
// from per-row tokenization errors), but is logged and skipped.
func LoadRows(s *store.Store, rows *reader.CSVReader, sourceName, schemaPrefix string) (int, error) {
	graph := SourceGraph(sourceName)
	n := 0
	for {
		row, err := rows.Next()
		if err == reader.ErrDone {
			break
		}
		if err != nil {
			log.Warningf("source %s: skipping malformed row: %v", sourceName, err)
			continue
		}
		if row.Value == "" {
			continue
		}
		s.Insert(quad.Quad{
			Subject:   quad.String(fmt.Sprintf("%d", row.Index)),
			Predicate: quad.IRI(schemaPrefix + row.Header),
			Object:    quad.String(row.Value),
			Graph:     graph,
		})
		n++
	}
	log.Infof("source %s: loaded %d row quads", sourceName, n)
	return n, nil
}

// Dataset binds a store to the per-project canonical-model-naming
// convention (§6: "{map_prefix}{model_name}"), so domain accessors
// can name their canonical graph and compute a resolve scope without
// repeating the IRI arithmetic.
type Dataset struct {
	Store     *store.Store
	MapPrefix string
}

// New returns a Dataset over s using mapPrefix as the canonical-graph
// namespace.
func New(s *store.Store, mapPrefix string) *Dataset {
	return &Dataset{Store: s, MapPrefix: mapPrefix}
}

// CanonicalGraph returns the canonical graph IRI for the given model
// name, e.g. "tissues" → "{map_prefix}tissues".
func (d *Dataset) CanonicalGraph(modelName string) quad.IRI {
	return quad.IRI(d.MapPrefix + modelName)
}

// TransformsInto returns every graph IRI declared (via a
// `transforms_into` quad in the default graph) to feed the given
// canonical graph (§4.F.5's `get_transforms_into`).
func (d *Dataset) TransformsInto(target quad.IRI) []quad.IRI {
	quads := d.Store.Match(
		store.AnyPattern(),
		store.ExactPattern(mapping.PredicateTransformsInto),
		store.ExactPattern(target),
		store.DefaultOnly(),
	)
	out := make([]quad.IRI, 0, len(quads))
	for _, q := range quads {
		if iri, ok := q.Subject.(quad.IRI); ok {
			out = append(out, iri)
		}
	}
	return out
}

// Scope returns the resolve scope for a canonical model: the model's
// own canonical graph, plus every source graph declared to transform
// into it (§4.G.1).
func (d *Dataset) Scope(modelName string) []quad.IRI {
	canonical := d.CanonicalGraph(modelName)
	scope := append([]quad.IRI{canonical}, d.TransformsInto(canonical)...)
	return scope
}
