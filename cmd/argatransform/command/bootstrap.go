package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ARGA-Genomes/arga-transformer/clog"
	"github.com/ARGA-Genomes/arga-transformer/internal/config"
	"github.com/ARGA-Genomes/arga-transformer/internal/schemaassets"
	"github.com/ARGA-Genomes/arga-transformer/loader"
	"github.com/ARGA-Genomes/arga-transformer/reader"
	"github.com/ARGA-Genomes/arga-transformer/resolver"
	"github.com/ARGA-Genomes/arga-transformer/store"
)

var log = clog.Component("cmd")

const (
	flagSchema = "schema"
	flagSource = "source"
)

// registerBootstrapFlags attaches the flags every data-bearing
// subcommand (load, resolve, triples, stats, jsonld) shares: which
// mapping documents to load, and which CSV files feed which source
// name.
func registerBootstrapFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice(flagSchema, nil, "path to a .trig mapping document to load in addition to the embedded schema set")
	cmd.Flags().StringSlice(flagSource, nil, `a "name=path.csv" pair naming a CSV file's source and the file to load it from; may be repeated`)
}

// bootstrap builds a fresh, in-memory Dataset from the embedded
// schema set, any --schema documents, and any --source CSV files
// named on cmd, per §4.E/§6: schemas load before rows, and this
// system's store is rebuilt from scratch on every invocation (§5: no
// on-disk persistence between processes).
func bootstrap(cmd *cobra.Command) (*loader.Dataset, *resolver.Resolver, error) {
	s := store.New()
	mapPrefix := viper.GetString(config.KeyMapPrefix)
	sourceNS := viper.GetString(config.KeySourceNS)
	ds := loader.New(s, mapPrefix)

	embedded, err := schemaassets.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap: embedded schemas: %w", err)
	}
	for name, doc := range embedded {
		if _, err := loader.LoadTriG(s, strings.NewReader(doc)); err != nil {
			return nil, nil, fmt.Errorf("bootstrap: embedded schema %s: %w", name, err)
		}
	}

	extra, err := cmd.Flags().GetStringSlice(flagSchema)
	if err != nil {
		return nil, nil, err
	}
	for _, path := range extra {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: opening schema %s: %w", path, err)
		}
		_, err = loader.LoadTriG(s, f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: loading schema %s: %w", path, err)
		}
	}

	sources, err := cmd.Flags().GetStringSlice(flagSource)
	if err != nil {
		return nil, nil, err
	}
	for _, spec := range sources {
		name, path, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, nil, fmt.Errorf("bootstrap: --source %q must be name=path.csv", spec)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: opening source %s: %w", path, err)
		}
		rows := reader.NewCSVReader(f)
		n, err := loader.LoadRows(s, rows, name, sourceNS)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: loading source %s: %w", name, err)
		}
		log.Infof("source %s: %d row quads loaded from %s", name, n, path)
	}

	res := resolver.New(s)
	return ds, res, nil
}
