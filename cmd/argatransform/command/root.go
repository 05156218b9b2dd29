// Package command implements the argatransform CLI's subcommands,
// one NewXxxCmd() per subcommand composed under a root command —
// mirroring cmd/cayley/command's NewInitDatabaseCmd/NewLoadDatabaseCmd
// shape, adapted from a persistent-store backend selector to this
// system's fixed in-memory pipeline.
package command

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ARGA-Genomes/arga-transformer/internal/config"
)

// NewRootCmd assembles the argatransform command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "argatransform",
		Short: "Resolve biodiversity CSV sources into typed domain records via a TriG mapping DSL.",
	}

	cfg := config.New()
	bindViperFlags(cfg)

	cmd.AddCommand(
		NewInitCmd(),
		NewLoadCmd(),
		NewResolveCmd(),
		NewTriplesCmd(),
		NewStatsCmd(),
		NewJsonLdCmd(),
		NewVersionCmd(),
	)
	return cmd
}

// bindViperFlags makes cfg the global viper instance the rest of the
// command package reads Key* settings from, the way database.go's
// subcommands read KeyBackend/KeyAddress off the package-level viper
// singleton rather than threading a config value through every RunE.
func bindViperFlags(cfg *viper.Viper) {
	for _, key := range []string{
		config.KeyMapPrefix,
		config.KeyFieldsNS,
		config.KeyMappingNS,
		config.KeySourceNS,
		config.KeySchemaSet,
		config.KeyLoadBatch,
	} {
		viper.SetDefault(key, cfg.Get(key))
	}
}
