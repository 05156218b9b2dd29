// Package jsonld compacts resolved domain records against a fixed
// JSON-LD context for external publishing, the way
// ld.JsonLdProcessor.Compact is exercised in json-gold's own example
// suite — here over model.Record instead of an ad-hoc map literal.
package jsonld

import (
	"fmt"

	"github.com/piprate/json-gold/ld"

	"github.com/ARGA-Genomes/arga-transformer/fields"
	"github.com/ARGA-Genomes/arga-transformer/model"
)

// Context is the fixed JSON-LD context every export compacts
// against: canonical field IRIs map to a "fields:" prefix, mirroring
// the registry namespace itself.
var Context = map[string]interface{}{
	"@context": map[string]interface{}{
		"fields": fields.Namespace,
	},
}

// expand turns one Record into an unexpanded JSON-LD node: each
// field's Go-facing name becomes a "fields:"-prefixed property whose
// value is the field's string or numeric form.
func expand(domain string, rec model.Record) map[string]interface{} {
	node := map[string]interface{}{
		"@id":   rec.ID.Text(),
		"@type": "fields:" + domain,
	}
	for name, f := range rec.Fields {
		if f.Kind == fields.KindString {
			node["fields:"+name] = f.Str
		} else {
			node["fields:"+name] = f.U64
		}
	}
	return node
}

// Compact compacts every record of domain into a single JSON-LD
// document — a "@graph" of per-record nodes — against Context.
func Compact(domain string, records []model.Record) (map[string]interface{}, error) {
	proc := ld.NewJsonLdProcessor()
	options := ld.NewJsonLdOptions("")

	nodes := make([]interface{}, 0, len(records))
	for _, rec := range records {
		nodes = append(nodes, expand(domain, rec))
	}
	doc := map[string]interface{}{"@graph": nodes}

	compacted, err := proc.Compact(doc, Context, options)
	if err != nil {
		return nil, fmt.Errorf("jsonld: compacting %s: %w", domain, err)
	}
	// Compaction collapses a one-node graph into a bare top-level node
	// (and an empty graph into nothing); put it back under "@graph".
	if _, ok := compacted["@graph"]; !ok {
		graph := []interface{}{}
		node := map[string]interface{}{}
		for k, v := range compacted {
			if k != "@context" {
				node[k] = v
				delete(compacted, k)
			}
		}
		if len(node) > 0 {
			graph = append(graph, node)
		}
		compacted["@graph"] = graph
	}
	return compacted, nil
}
