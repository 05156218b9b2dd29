package fields

// ByModelName maps a canonical model name (§6's closed set) to its
// registry, for callers that select a domain dynamically.
var ByModelName = map[string]*Registry{
	"names":            Name,
	"publications":     Publication,
	"tissues":          Tissue,
	"collecting":       Collecting,
	"organisms":        Organism,
	"subsamples":       Subsample,
	"extractions":      Extraction,
	"library":          Library,
	"sequencing_runs":  SequencingRun,
	"assembly":         Assembly,
	"data_products":    DataProduct,
	"annotation":       Annotation,
	"deposition":       Deposition,
	"project":          Project,
	"project_member":   ProjectMember,
}
