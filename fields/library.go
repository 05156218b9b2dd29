package fields

// Library is the registry for the `library` canonical model.
var Library = NewRegistry("library", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "ExtractId", Suffix: "extract_id", Kind: KindString},
	{Name: "LibraryId", Suffix: "library_id", Kind: KindString},
	{Name: "ScientificName", Suffix: "scientific_name", Kind: KindString},
	{Name: "EventDate", Suffix: "event_date", Kind: KindString},
	{Name: "Concentration", Suffix: "concentration", Kind: KindString},
	{Name: "ConcentrationUnit", Suffix: "concentration_unit", Kind: KindString},
	{Name: "PcrCycles", Suffix: "pcr_cycles", Kind: KindString},
	{Name: "Layout", Suffix: "layout", Kind: KindString},
	{Name: "PreparedBy", Suffix: "prepared_by", Kind: KindString},
	{Name: "Selection", Suffix: "selection", Kind: KindString},
	{Name: "BaitSetName", Suffix: "bait_set_name", Kind: KindString},
	{Name: "BaitSetReference", Suffix: "bait_set_reference", Kind: KindString},
	{Name: "ConstructionProtocol", Suffix: "construction_protocol", Kind: KindString},
	{Name: "Source", Suffix: "source", Kind: KindString},
	{Name: "InsertSize", Suffix: "insert_size", Kind: KindString},
	{Name: "DesignDescription", Suffix: "design_description", Kind: KindString},
	{Name: "Strategy", Suffix: "strategy", Kind: KindString},
	{Name: "IndexTag", Suffix: "index_tag", Kind: KindString},
	{Name: "IndexDualTag", Suffix: "index_dual_tag", Kind: KindString},
	{Name: "IndexOligo", Suffix: "index_oligo", Kind: KindString},
	{Name: "IndexDualOligo", Suffix: "index_dual_oligo", Kind: KindString},
	{Name: "Location", Suffix: "location", Kind: KindString},
	{Name: "Remarks", Suffix: "remarks", Kind: KindString},
	{Name: "DnaTreatment", Suffix: "dna_treatment", Kind: KindString},
	{Name: "NumberOfLibrariesPooled", Suffix: "number_of_libraries_pooled", Kind: KindString},
	{Name: "PcrReplicates", Suffix: "pcr_replicates", Kind: KindString},
	{Name: "PreparedByEntityId", Suffix: "prepared_by_entity_id", Kind: KindString},
	{Name: "CanonicalName", Suffix: "canonical_name", Kind: KindString},
	{Name: "ScientificNameAuthorship", Suffix: "scientific_name_authorship", Kind: KindString},
})
