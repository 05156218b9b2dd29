package fields

// Extraction is the registry for the `extractions` canonical model.
var Extraction = NewRegistry("extraction", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "SubsampleId", Suffix: "subsample_id", Kind: KindString},
	{Name: "ExtractId", Suffix: "extract_id", Kind: KindString},
	{Name: "ExtractedBy", Suffix: "extracted_by", Kind: KindString},
	{Name: "ExtractedByOrcid", Suffix: "extracted_by_orcid", Kind: KindString},
	{Name: "ExtractionDate", Suffix: "extraction_date", Kind: KindString},
	{Name: "NucleicAcidType", Suffix: "nucleic_acid_type", Kind: KindString},
	{Name: "NucleicAcidConformation", Suffix: "nucleic_acid_conformation", Kind: KindString},
	{Name: "NucleicAcidPreservationMethod", Suffix: "nucleic_acid_preservation_method", Kind: KindString},
	{Name: "NucleicAcidConcentration", Suffix: "nucleic_acid_concentration", Kind: KindString},
	{Name: "NucleicAcidQuantification", Suffix: "nucleic_acid_quantification", Kind: KindString},
	{Name: "ConcentrationUnit", Suffix: "concentration_unit", Kind: KindString},
	{Name: "Absorbance260230Ratio", Suffix: "absorbance_260_230_ratio", Kind: KindString},
	{Name: "Absorbance260280Ratio", Suffix: "absorbance_260_280_ratio", Kind: KindString},
	{Name: "CellLysisMethod", Suffix: "cell_lysis_method", Kind: KindString},
	{Name: "MaterialExtractedBy", Suffix: "material_extracted_by", Kind: KindString},
	{Name: "MaterialExtractedByOrcid", Suffix: "material_extracted_by_orcid", Kind: KindString},
	{Name: "ActionExtracted", Suffix: "action_extracted", Kind: KindString},
	{Name: "ExtractionMethod", Suffix: "extraction_method", Kind: KindString},
	{Name: "NumberOfExtractsPooled", Suffix: "number_of_extracts_pooled", Kind: KindString},
	{Name: "Doi", Suffix: "doi", Kind: KindString},
	{Name: "Citation", Suffix: "citation", Kind: KindString},
	{Name: "ExtractedByEntityId", Suffix: "extracted_by_entity_id", Kind: KindString},
	{Name: "MaterialExtractedByEntityId", Suffix: "material_extracted_by_entity_id", Kind: KindString},
	{Name: "PublicationEntityId", Suffix: "publication_entity_id", Kind: KindString},
})
