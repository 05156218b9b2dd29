package fields

// SequencingRun is the registry for the `sequencing_runs` canonical model.
var SequencingRun = NewRegistry("sequencing_run", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "LibraryId", Suffix: "library_id", Kind: KindString},
	{Name: "SequenceId", Suffix: "sequence_id", Kind: KindString},
	{Name: "Facility", Suffix: "facility", Kind: KindString},
	{Name: "EventDate", Suffix: "event_date", Kind: KindString},
	{Name: "InstrumentOrMethod", Suffix: "instrument_or_method", Kind: KindString},
	{Name: "SraRunAccession", Suffix: "sra_run_accession", Kind: KindString},
	{Name: "Platform", Suffix: "platform", Kind: KindString},
	{Name: "DatasetFileFormat", Suffix: "dataset_file_format", Kind: KindString},
	{Name: "KitChemistry", Suffix: "kit_chemistry", Kind: KindString},
	{Name: "FlowcellType", Suffix: "flowcell_type", Kind: KindString},
	{Name: "CellMovieLength", Suffix: "cell_movie_length", Kind: KindString},
	{Name: "BaseCallerModel", Suffix: "base_caller_model", Kind: KindString},
	{Name: "Fast5Compression", Suffix: "fast5_compression", Kind: KindString},
	{Name: "AnalysisSoftware", Suffix: "analysis_software", Kind: KindString},
	{Name: "AnalysisSoftwareVersion", Suffix: "analysis_software_version", Kind: KindString},
	{Name: "TargetGene", Suffix: "target_gene", Kind: KindString},
})
