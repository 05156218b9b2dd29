package fields

// Organism is the registry for the `organisms` canonical model.
var Organism = NewRegistry("organism", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "OrganismId", Suffix: "organism_id", Kind: KindString},
	{Name: "ScientificName", Suffix: "scientific_name", Kind: KindString},
	{Name: "Sex", Suffix: "sex", Kind: KindString},
	{Name: "GenotypicSex", Suffix: "genotypic_sex", Kind: KindString},
	{Name: "PhenotypicSex", Suffix: "phenotypic_sex", Kind: KindString},
	{Name: "LifeStage", Suffix: "life_stage", Kind: KindString},
	{Name: "ReproductiveCondition", Suffix: "reproductive_condition", Kind: KindString},
	{Name: "Behavior", Suffix: "behavior", Kind: KindString},
	{Name: "LiveState", Suffix: "live_state", Kind: KindString},
	{Name: "Remarks", Suffix: "remarks", Kind: KindString},
	{Name: "IdentifiedBy", Suffix: "identified_by", Kind: KindString},
	{Name: "IdentificationDate", Suffix: "identification_date", Kind: KindString},
	{Name: "Disposition", Suffix: "disposition", Kind: KindString},
	{Name: "FirstObservedAt", Suffix: "first_observed_at", Kind: KindString},
	{Name: "LastKnownAliveAt", Suffix: "last_known_alive_at", Kind: KindString},
	{Name: "Biome", Suffix: "biome", Kind: KindString},
	{Name: "Habitat", Suffix: "habitat", Kind: KindString},
	{Name: "Bioregion", Suffix: "bioregion", Kind: KindString},
	{Name: "IbraImcra", Suffix: "ibra_imcra", Kind: KindString},
	{Name: "Latitude", Suffix: "latitude", Kind: KindString},
	{Name: "Longitude", Suffix: "longitude", Kind: KindString},
	{Name: "CoordinateSystem", Suffix: "coordinate_system", Kind: KindString},
	{Name: "LocationSource", Suffix: "location_source", Kind: KindString},
	{Name: "Holding", Suffix: "holding", Kind: KindString},
	{Name: "HoldingId", Suffix: "holding_id", Kind: KindString},
	{Name: "HoldingPermit", Suffix: "holding_permit", Kind: KindString},
	{Name: "Doi", Suffix: "doi", Kind: KindString},
	{Name: "Citation", Suffix: "citation", Kind: KindString},
	{Name: "Curator", Suffix: "curator", Kind: KindString},
	{Name: "CuratorOrcid", Suffix: "curator_orcid", Kind: KindString},
	{Name: "CreatedAt", Suffix: "created_at", Kind: KindString},
	{Name: "UpdatedAt", Suffix: "updated_at", Kind: KindString},
	{Name: "PublicationEntityId", Suffix: "publication_entity_id", Kind: KindString},
	{Name: "CanonicalName", Suffix: "canonical_name", Kind: KindString},
	{Name: "ScientificNameAuthorship", Suffix: "scientific_name_authorship", Kind: KindString},
})
