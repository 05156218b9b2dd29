// Package model implements the domain accessors of §4.G: one function
// per canonical model that builds a resolve scope, calls the
// resolver, and materializes typed records via the matching `fields`
// registry. This layer is mechanical by design (§1: "out of scope...
// the specific shape of every domain record") — each accessor differs
// only in its model name and the registry it resolves, so the shared
// `resolveRegistry` helper does the scope/resolve/materialize work
// once and every per-domain file is a thin wrapper over it.
package model

import (
	"fmt"
	"sort"

	"github.com/ARGA-Genomes/arga-transformer/clog"
	"github.com/ARGA-Genomes/arga-transformer/fields"
	"github.com/ARGA-Genomes/arga-transformer/loader"
	"github.com/ARGA-Genomes/arga-transformer/quad"
	"github.com/ARGA-Genomes/arga-transformer/resolver"
)

var log = clog.Component("model")

// Values is a resolved record's fields keyed by their Go-facing
// registry name (fields.Spec.Name), e.g. Values["ScientificName"].
type Values map[string]fields.Field

// Str returns the first string value for name, or "" if absent.
func (v Values) Str(name string) string {
	if f, ok := v[name]; ok {
		return f.Str
	}
	return ""
}

// U64 returns the first uint64 value for name, or 0 if absent.
func (v Values) U64(name string) uint64 {
	if f, ok := v[name]; ok {
		return f.U64
	}
	return 0
}

// resolveRegistry runs §4.G.1-4.G.3 for one canonical model: builds
// the scope from ds, resolves every field the registry recognises,
// and materializes each record's typed fields into a Values map
// keyed by EntityId-independent record id (the row-subject literal).
func resolveRegistry(ds *loader.Dataset, res *resolver.Resolver, modelName string, reg *fields.Registry) (map[quad.Literal]Values, error) {
	scope := ds.Scope(modelName)
	rm, err := res.Resolve(reg.IRIs(), scope)
	if err != nil {
		return nil, fmt.Errorf("model: resolving %s: %w", modelName, err)
	}

	out := make(map[quad.Literal]Values, len(rm))
	for id, valueMap := range rm {
		rec := make(Values, len(valueMap))
		for iri, lits := range valueMap {
			if len(lits) == 0 {
				continue
			}
			f, err := reg.FromLiteral(iri, lits[0])
			if err != nil {
				log.Warningf("%s record %s: %v", modelName, id.Text(), err)
				continue
			}
			rec[f.Name] = f
		}
		out[id] = rec
	}
	log.Infof("resolved %d %s records", len(out), modelName)
	return out, nil
}

// Record is one materialized domain record: its row-subject id plus
// its named field values.
type Record struct {
	ID     quad.Literal
	Fields Values
}

// records flattens a resolveRegistry result into a deterministically
// ordered slice, sorted by record id's textual form so domain
// accessors don't inherit map iteration's nondeterminism.
func records(m map[quad.Literal]Values) []Record {
	out := make([]Record, 0, len(m))
	for id, v := range m {
		out = append(out, Record{ID: id, Fields: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Text() < out[j].ID.Text() })
	return out
}
