package model

import (
	"fmt"

	"github.com/ARGA-Genomes/arga-transformer/loader"
	"github.com/ARGA-Genomes/arga-transformer/resolver"
)

// Accessor resolves one canonical model into its records.
type Accessor func(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error)

// Accessors maps every canonical model name (§4.G) to the accessor
// that resolves it, for callers — chiefly the CLI — that select a
// model by name rather than importing a specific function.
var Accessors = map[string]Accessor{
	"collecting":      Collecting,
	"organisms":       Organisms,
	"tissues":         Tissues,
	"subsamples":      Subsamples,
	"extractions":     Extractions,
	"library":         Library,
	"sequencing_runs": SequencingRuns,
	"data_products":   DataProducts,
	"assembly":        Assemblies,
	"annotation":      Annotations,
	"deposition":      Depositions,
	"names":           Names,
	"publications":    Publications,
	"project":         Projects,
	"project_member":  ProjectMembers,
}

// Resolve looks up and runs the accessor for modelName, or reports an
// error naming the unrecognised model.
func Resolve(modelName string, ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	acc, ok := Accessors[modelName]
	if !ok {
		return nil, fmt.Errorf("model: unrecognised model %q", modelName)
	}
	return acc(ds, res)
}
