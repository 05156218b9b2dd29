package fields

// Annotation is the registry for the `annotation` canonical model.
var Annotation = NewRegistry("annotation", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "AssemblyId", Suffix: "assembly_id", Kind: KindString},
	{Name: "Name", Suffix: "name", Kind: KindString},
	{Name: "Provider", Suffix: "provider", Kind: KindString},
	{Name: "Method", Suffix: "method", Kind: KindString},
	{Name: "Type", Suffix: "type", Kind: KindString},
	{Name: "Version", Suffix: "version", Kind: KindString},
	{Name: "Software", Suffix: "software", Kind: KindString},
	{Name: "SoftwareVersion", Suffix: "software_version", Kind: KindString},
	{Name: "EventDate", Suffix: "event_date", Kind: KindString},
	// Gene-count fields default to 0 on unparsable input rather than
	// erroring, unlike Assembly's plain uint64 fields.
	{Name: "NumberOfGenes", Suffix: "number_of_genes", Kind: KindUInt64ZeroOnFailure},
	{Name: "NumberOfCodingProteins", Suffix: "number_of_coding_proteins", Kind: KindUInt64ZeroOnFailure},
	{Name: "NumberOfNonCodingProteins", Suffix: "number_of_non_coding_proteins", Kind: KindUInt64ZeroOnFailure},
	{Name: "NumberOfPseudogenes", Suffix: "number_of_pseudogenes", Kind: KindUInt64ZeroOnFailure},
	{Name: "NumberOfOtherGenes", Suffix: "number_of_other_genes", Kind: KindUInt64ZeroOnFailure},
})
