package fields

// Assembly is the registry for the `assembly` canonical model. It
// carries the data model's only numeric fields — counts and sizes
// parse as comma-stripped uint64; GuanineCytosinePercent additionally
// falls back to a rounded float32 when integer parsing fails (§4.D).
var Assembly = NewRegistry("assembly", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "LibraryId", Suffix: "library_id", Kind: KindString},
	{Name: "AssemblyId", Suffix: "assembly_id", Kind: KindString},
	{Name: "ScientificName", Suffix: "scientific_name", Kind: KindString},
	{Name: "EventDate", Suffix: "event_date", Kind: KindString},
	{Name: "Name", Suffix: "name", Kind: KindString},
	{Name: "Type", Suffix: "type", Kind: KindString},
	{Name: "Method", Suffix: "method", Kind: KindString},
	{Name: "MethodVersion", Suffix: "method_version", Kind: KindString},
	{Name: "MethodLink", Suffix: "method_link", Kind: KindString},
	{Name: "Size", Suffix: "size", Kind: KindUInt64},
	{Name: "SizeUngapped", Suffix: "size_ungapped", Kind: KindUInt64},
	{Name: "MinimumGapLength", Suffix: "minimum_gap_length", Kind: KindString},
	{Name: "Completeness", Suffix: "completeness", Kind: KindString},
	{Name: "CompletenessMethod", Suffix: "completeness_method", Kind: KindString},
	{Name: "SourceMolecule", Suffix: "source_molecule", Kind: KindString},
	{Name: "ReferenceGenomeUsed", Suffix: "reference_genome_used", Kind: KindString},
	{Name: "ReferenceGenomeLink", Suffix: "reference_genome_link", Kind: KindString},
	{Name: "Hybrid", Suffix: "hybrid", Kind: KindString},
	{Name: "HybridInformation", Suffix: "hybrid_information", Kind: KindString},
	{Name: "PolishingOrScaffoldingMethod", Suffix: "polishing_or_scaffolding_method", Kind: KindString},
	{Name: "PolishingOrScaffoldingData", Suffix: "polishing_or_scaffolding_data", Kind: KindString},
	{Name: "ComputationalInfrastructure", Suffix: "computational_infrastructure", Kind: KindString},
	{Name: "SystemUsed", Suffix: "system_used", Kind: KindString},
	{Name: "Level", Suffix: "level", Kind: KindString},
	{Name: "Representation", Suffix: "representation", Kind: KindString},
	{Name: "NumberOfScaffolds", Suffix: "number_of_scaffolds", Kind: KindUInt64},
	{Name: "NumberOfContigs", Suffix: "number_of_contigs", Kind: KindUInt64},
	{Name: "NumberOfChromosomes", Suffix: "number_of_chromosomes", Kind: KindUInt64},
	{Name: "NumberOfComponentSequences", Suffix: "number_of_component_sequences", Kind: KindUInt64},
	{Name: "NumberOfOrganelles", Suffix: "number_of_organelles", Kind: KindUInt64},
	{Name: "NumberOfGapsBetweenScaffolds", Suffix: "number_of_gaps_between_scaffolds", Kind: KindUInt64},
	{Name: "NumberOfATGC", Suffix: "number_of_atgc", Kind: KindUInt64},
	{Name: "NumberOfGuanineCytosine", Suffix: "number_of_guanine_cytosine", Kind: KindUInt64},
	{Name: "GuanineCytosinePercent", Suffix: "guanine_cytosine_percent", Kind: KindPercentUInt64},
	{Name: "GenomeCoverage", Suffix: "genome_coverage", Kind: KindString},
	{Name: "AssemblyN50", Suffix: "assembly_n50", Kind: KindString},
	{Name: "ContigN50", Suffix: "contig_n50", Kind: KindUInt64},
	{Name: "ContigL50", Suffix: "contig_l50", Kind: KindUInt64},
	{Name: "ScaffoldN50", Suffix: "scaffold_n50", Kind: KindUInt64},
	{Name: "ScaffoldL50", Suffix: "scaffold_l50", Kind: KindUInt64},
	{Name: "LongestContig", Suffix: "longest_contig", Kind: KindUInt64},
	{Name: "LongestScaffold", Suffix: "longest_scaffold", Kind: KindUInt64},
	{Name: "TotalContigSize", Suffix: "total_contig_size", Kind: KindUInt64},
	{Name: "TotalScaffoldSize", Suffix: "total_scaffold_size", Kind: KindUInt64},
	{Name: "CanonicalName", Suffix: "canonical_name", Kind: KindString},
	{Name: "ScientificNameAuthorship", Suffix: "scientific_name_authorship", Kind: KindString},
	{Name: "TaxonId", Suffix: "taxon_id", Kind: KindString},
})
