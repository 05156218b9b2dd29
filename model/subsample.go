package model

import (
	"github.com/ARGA-Genomes/arga-transformer/fields"
	"github.com/ARGA-Genomes/arga-transformer/loader"
	"github.com/ARGA-Genomes/arga-transformer/quad"
	"github.com/ARGA-Genomes/arga-transformer/resolver"
)

// ScientificNameField is the Go-facing name under which Subsamples
// enriches each record with an upstream scientific name (§4.G.4).
// It is not one of fields.Subsample's own registry entries — the
// subsample model itself never carries scientific_name — so it is
// added to Values after resolveRegistry runs, not materialized via
// FromLiteral.
const ScientificNameField = "ScientificName"

// Subsamples resolves the subsamples model and enriches each record
// with the scientific name of its originating collection event, joined
// via Subsample.TissueId → Tissue.EntityId, then
// Tissue.MaterialSampleId → Collecting.EntityId → Collecting.ScientificName
// (§4.G.4's worked example: "Subsample→Tissue→Collecting to obtain
// scientific_name").
func Subsamples(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	subsamples, err := resolveRegistry(ds, res, "subsamples", fields.Subsample)
	if err != nil {
		return nil, err
	}
	tissues, err := resolveRegistry(ds, res, "tissues", fields.Tissue)
	if err != nil {
		return nil, err
	}
	collecting, err := resolveRegistry(ds, res, "collecting", fields.Collecting)
	if err != nil {
		return nil, err
	}

	tissueByEntityID := indexBy(tissues, "EntityId")
	nameByCollectingEntityID := map[string]string{}
	for _, v := range collecting {
		if entityID := v.Str("EntityId"); entityID != "" {
			nameByCollectingEntityID[entityID] = v.Str("ScientificName")
		}
	}

	for id, v := range subsamples {
		tissue, ok := tissueByEntityID[v.Str("TissueId")]
		if !ok {
			continue
		}
		name, ok := nameByCollectingEntityID[tissue.Str("MaterialSampleId")]
		if !ok || name == "" {
			continue
		}
		v[ScientificNameField] = fields.Field{Name: ScientificNameField, Kind: fields.KindString, Str: name}
		subsamples[id] = v
	}
	return records(subsamples), nil
}

// indexBy builds a lookup from a named field's string value to the
// record carrying it, for the common case of joining on an identifier
// field that is expected to be unique within its model.
func indexBy(m map[quad.Literal]Values, field string) map[string]Values {
	out := make(map[string]Values, len(m))
	for _, v := range m {
		if key := v.Str(field); key != "" {
			out[key] = v
		}
	}
	return out
}
