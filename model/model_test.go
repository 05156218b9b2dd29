package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARGA-Genomes/arga-transformer/fields"
	"github.com/ARGA-Genomes/arga-transformer/loader"
	"github.com/ARGA-Genomes/arga-transformer/mapping"
	"github.com/ARGA-Genomes/arga-transformer/quad"
	"github.com/ARGA-Genomes/arga-transformer/resolver"
	"github.com/ARGA-Genomes/arga-transformer/store"
)

const mapPrefix = "http://arga.org.au/schemas/mapping/"

func sameQuad(field, source, graph quad.IRI) quad.Quad {
	return quad.Quad{Subject: field, Predicate: mapping.PredicateSame, Object: source, Graph: graph}
}

func rowQuad(subject string, predicate, graph quad.IRI, value quad.Literal) quad.Quad {
	return quad.Quad{Subject: quad.String(subject), Predicate: predicate, Object: value, Graph: graph}
}

func TestTissuesAccessor(t *testing.T) {
	s := store.New()
	ds := loader.New(s, mapPrefix)
	tissuesGraph := ds.CanonicalGraph("tissues")
	src := loader.SourceGraph("tissues.csv")

	s.Insert(sameQuad(quad.IRI(fields.Namespace+"tissue_id"), quad.IRI("source:tissue_id"), tissuesGraph))
	s.Insert(rowQuad("0", quad.IRI("source:tissue_id"), src, quad.String("T1")))
	s.Insert(quad.Quad{Subject: src, Predicate: mapping.PredicateTransformsInto, Object: tissuesGraph})

	res := resolver.New(s)
	recs, err := Tissues(ds, res)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "T1", recs[0].Fields.Str("TissueId"))
}

func TestSubsamplesScientificNameEnrichment(t *testing.T) {
	s := store.New()
	ds := loader.New(s, mapPrefix)

	collectingGraph := ds.CanonicalGraph("collecting")
	tissuesGraph := ds.CanonicalGraph("tissues")
	subsamplesGraph := ds.CanonicalGraph("subsamples")

	collectingSrc := loader.SourceGraph("collecting.csv")
	tissuesSrc := loader.SourceGraph("tissues.csv")
	subsamplesSrc := loader.SourceGraph("subsamples.csv")

	entityID := quad.IRI(fields.Namespace + "entity_id")
	organismID := quad.IRI(fields.Namespace + "organism_id")
	scientificName := quad.IRI(fields.Namespace + "scientific_name")
	materialSampleID := quad.IRI(fields.Namespace + "material_sample_id")
	tissueID := quad.IRI(fields.Namespace + "tissue_id")

	// Collecting is keyed by its own EntityId, distinct from the
	// OrganismId it also carries, so the join can't accidentally
	// succeed by matching the wrong field.
	s.Insert(sameQuad(entityID, quad.IRI("source:entity_id"), collectingGraph))
	s.Insert(sameQuad(organismID, quad.IRI("source:organism_id"), collectingGraph))
	s.Insert(sameQuad(scientificName, quad.IRI("source:species"), collectingGraph))
	s.Insert(rowQuad("0", quad.IRI("source:entity_id"), collectingSrc, quad.String("C1")))
	s.Insert(rowQuad("0", quad.IRI("source:organism_id"), collectingSrc, quad.String("O1")))
	s.Insert(rowQuad("0", quad.IRI("source:species"), collectingSrc, quad.String("Felis catus")))
	s.Insert(quad.Quad{Subject: collectingSrc, Predicate: mapping.PredicateTransformsInto, Object: collectingGraph})

	// Tissue's own EntityId (TE1) is distinct from its TissueId (T1);
	// MaterialSampleId (C1) bridges to Collecting.EntityId.
	s.Insert(sameQuad(entityID, quad.IRI("source:entity_id"), tissuesGraph))
	s.Insert(sameQuad(materialSampleID, quad.IRI("source:material_sample_id"), tissuesGraph))
	s.Insert(sameQuad(tissueID, quad.IRI("source:tissue_id"), tissuesGraph))
	s.Insert(rowQuad("0", quad.IRI("source:entity_id"), tissuesSrc, quad.String("TE1")))
	s.Insert(rowQuad("0", quad.IRI("source:material_sample_id"), tissuesSrc, quad.String("C1")))
	s.Insert(rowQuad("0", quad.IRI("source:tissue_id"), tissuesSrc, quad.String("T1")))
	s.Insert(quad.Quad{Subject: tissuesSrc, Predicate: mapping.PredicateTransformsInto, Object: tissuesGraph})

	// Subsample.TissueId (TE1) matches Tissue.EntityId, not Tissue.TissueId.
	s.Insert(sameQuad(tissueID, quad.IRI("source:tissue_id"), subsamplesGraph))
	s.Insert(rowQuad("0", quad.IRI("source:tissue_id"), subsamplesSrc, quad.String("TE1")))
	s.Insert(quad.Quad{Subject: subsamplesSrc, Predicate: mapping.PredicateTransformsInto, Object: subsamplesGraph})

	res := resolver.New(s)
	recs, err := Subsamples(ds, res)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "TE1", recs[0].Fields.Str("TissueId"))
	require.Equal(t, "Felis catus", recs[0].Fields.Str(ScientificNameField))
}

func TestGetAllAgentsDeduplicatesByEntityID(t *testing.T) {
	s := store.New()
	ds := loader.New(s, mapPrefix)

	dpGraph := ds.CanonicalGraph("data_products")
	dpSrc := loader.SourceGraph("data_products.csv")

	custodian := quad.IRI(fields.Namespace + "custodian")
	custodianEntityID := quad.IRI(fields.Namespace + "custodian_entity_id")

	s.Insert(sameQuad(custodian, quad.IRI("source:custodian"), dpGraph))
	s.Insert(sameQuad(custodianEntityID, quad.IRI("source:custodian_id"), dpGraph))
	s.Insert(rowQuad("0", quad.IRI("source:custodian"), dpSrc, quad.String("Jane Smith")))
	s.Insert(rowQuad("0", quad.IRI("source:custodian_id"), dpSrc, quad.String("A1")))
	s.Insert(rowQuad("1", quad.IRI("source:custodian"), dpSrc, quad.String("Jane Smith")))
	s.Insert(rowQuad("1", quad.IRI("source:custodian_id"), dpSrc, quad.String("A1")))
	s.Insert(quad.Quad{Subject: dpSrc, Predicate: mapping.PredicateTransformsInto, Object: dpGraph})

	res := resolver.New(s)
	agents, err := GetAllAgents(ds, res)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	require.Equal(t, "A1", agents[0].EntityID)
	require.Equal(t, "Jane Smith", agents[0].Name)
}
