package fields

// Subsample is the registry for the `subsamples` canonical model.
var Subsample = NewRegistry("subsample", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "SpecimenId", Suffix: "specimen_id", Kind: KindString},
	{Name: "MaterialSampleId", Suffix: "material_sample_id", Kind: KindString},
	{Name: "TissueId", Suffix: "tissue_id", Kind: KindString},
	{Name: "SubsampleId", Suffix: "subsample_id", Kind: KindString},
	{Name: "SampleType", Suffix: "sample_type", Kind: KindString},
	{Name: "Institution", Suffix: "institution", Kind: KindString},
	{Name: "InstitutionCode", Suffix: "institution_code", Kind: KindString},
	{Name: "Name", Suffix: "name", Kind: KindString},
	{Name: "Custodian", Suffix: "custodian", Kind: KindString},
	{Name: "Description", Suffix: "description", Kind: KindString},
	{Name: "Notes", Suffix: "notes", Kind: KindString},
	{Name: "CultureMethod", Suffix: "culture_method", Kind: KindString},
	{Name: "CultureMedia", Suffix: "culture_media", Kind: KindString},
	{Name: "WeightOrVolume", Suffix: "weight_or_vol", Kind: KindString},
	{Name: "PreservationMethod", Suffix: "preservation_method", Kind: KindString},
	{Name: "PreservationTemperature", Suffix: "preservation_temperature", Kind: KindString},
	{Name: "PreservationDuration", Suffix: "preservation_duration", Kind: KindString},
	{Name: "Quality", Suffix: "quality", Kind: KindString},
	{Name: "CellType", Suffix: "cell_type", Kind: KindString},
	{Name: "CellLine", Suffix: "cell_line", Kind: KindString},
	{Name: "CloneName", Suffix: "clone_name", Kind: KindString},
	{Name: "LabHost", Suffix: "lab_host", Kind: KindString},
	{Name: "SampleProcessing", Suffix: "sample_processing", Kind: KindString},
	{Name: "SamplePooling", Suffix: "sample_pooling", Kind: KindString},
})
