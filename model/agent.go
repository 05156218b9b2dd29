package model

import (
	"sort"

	"github.com/ARGA-Genomes/arga-transformer/fields"
	"github.com/ARGA-Genomes/arga-transformer/loader"
	"github.com/ARGA-Genomes/arga-transformer/resolver"
)

// Agent is a person or organisation assembled from the several
// `*_by`/`*_by_orcid`/`*_by_entity_id` field triples scattered across
// domains (§ SUPPLEMENTED FEATURES: Agent is not its own canonical
// model in the field-IRI sense — it is aggregated, not resolved).
type Agent struct {
	EntityID string
	Name     string
	Orcid    string
}

// agentSource names one domain's "acting party" field triple, used to
// contribute one Agent per non-empty observation.
type agentSource struct {
	model        string
	reg          *fields.Registry
	nameField    string
	orcidField   string
	entityField  string
}

// GetAllAgents resolves every domain that records an acting party
// (data_products custodian, extraction extracted_by and
// material_extracted_by, library prepared_by) and deduplicates by
// entity id, following original_source's agent aggregation.
func GetAllAgents(ds *loader.Dataset, res *resolver.Resolver) ([]Agent, error) {
	sources := []agentSource{
		{"data_products", fields.DataProduct, "Custodian", "CustodianOrcid", "CustodianEntityId"},
		{"extractions", fields.Extraction, "ExtractedBy", "ExtractedByOrcid", "ExtractedByEntityId"},
		{"extractions", fields.Extraction, "MaterialExtractedBy", "MaterialExtractedByOrcid", "MaterialExtractedByEntityId"},
		{"library", fields.Library, "PreparedBy", "", "PreparedByEntityId"},
	}

	byEntityID := map[string]Agent{}
	for _, src := range sources {
		m, err := resolveRegistry(ds, res, src.model, src.reg)
		if err != nil {
			return nil, err
		}
		for _, v := range m {
			entityID := v.Str(src.entityField)
			name := v.Str(src.nameField)
			if entityID == "" && name == "" {
				continue
			}
			key := entityID
			if key == "" {
				key = name
			}
			if _, ok := byEntityID[key]; ok {
				continue
			}
			byEntityID[key] = Agent{
				EntityID: entityID,
				Name:     name,
				Orcid:    v.Str(src.orcidField),
			}
		}
	}

	out := make([]Agent, 0, len(byEntityID))
	for _, a := range byEntityID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntityID != out[j].EntityID {
			return out[i].EntityID < out[j].EntityID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
