package fields

// Tissue is the registry for the `tissues` canonical model.
var Tissue = NewRegistry("tissue", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "OrganismId", Suffix: "organism_id", Kind: KindString},
	{Name: "TissueId", Suffix: "tissue_id", Kind: KindString},
	{Name: "MaterialSampleId", Suffix: "material_sample_id", Kind: KindString},
	{Name: "OriginalCatalogueName", Suffix: "original_catalogue_name", Kind: KindString},
	{Name: "CurrentCatalogueName", Suffix: "current_catalogue_name", Kind: KindString},
	{Name: "IdentificationVerified", Suffix: "identification_verified", Kind: KindString},
	{Name: "ReferenceMaterial", Suffix: "reference_material", Kind: KindString},
	{Name: "RegisteredBy", Suffix: "registered_by", Kind: KindString},
	{Name: "RegistrationDate", Suffix: "registration_date", Kind: KindString},
	{Name: "Custodian", Suffix: "custodian", Kind: KindString},
	{Name: "Institution", Suffix: "institution", Kind: KindString},
	{Name: "InstitutionCode", Suffix: "institution_code", Kind: KindString},
	{Name: "Collection", Suffix: "collection", Kind: KindString},
	{Name: "CollectionCode", Suffix: "collection_code", Kind: KindString},
	{Name: "Status", Suffix: "status", Kind: KindString},
	{Name: "CurrentStatus", Suffix: "current_status", Kind: KindString},
	{Name: "SamplingProtocol", Suffix: "sampling_protocol", Kind: KindString},
	{Name: "TissueType", Suffix: "tissue_type", Kind: KindString},
	{Name: "Disposition", Suffix: "disposition", Kind: KindString},
	{Name: "Fixation", Suffix: "fixation", Kind: KindString},
	{Name: "Storage", Suffix: "storage", Kind: KindString},
	{Name: "Citation", Suffix: "citation", Kind: KindString},
	{Name: "SourceUrl", Suffix: "source_url", Kind: KindString},
})
