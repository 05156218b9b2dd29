package fields

// DataProduct is the registry for the `data_products` canonical model.
var DataProduct = NewRegistry("data_product", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "OrganismId", Suffix: "organism_id", Kind: KindString},
	{Name: "ExtractId", Suffix: "extract_id", Kind: KindString},
	{Name: "SequenceRunId", Suffix: "sequence_run_id", Kind: KindString},
	{Name: "SequenceSampleId", Suffix: "sequence_sample_id", Kind: KindString},
	{Name: "SequenceAnalysisId", Suffix: "sequence_analysis_id", Kind: KindString},
	{Name: "Notes", Suffix: "notes", Kind: KindString},
	{Name: "Context", Suffix: "context", Kind: KindString},
	{Name: "Type", Suffix: "type", Kind: KindString},
	{Name: "FileType", Suffix: "file_type", Kind: KindString},
	{Name: "Url", Suffix: "url", Kind: KindString},
	{Name: "Licence", Suffix: "licence", Kind: KindString},
	{Name: "Access", Suffix: "access", Kind: KindString},
	{Name: "Custodian", Suffix: "custodian", Kind: KindString},
	{Name: "CustodianOrcid", Suffix: "custodian_orcid", Kind: KindString},
	{Name: "Citation", Suffix: "citation", Kind: KindString},
	{Name: "SourceUrl", Suffix: "source_url", Kind: KindString},
	{Name: "CustodianEntityId", Suffix: "custodian_entity_id", Kind: KindString},
	{Name: "PublicationEntityId", Suffix: "publication_entity_id", Kind: KindString},
})
