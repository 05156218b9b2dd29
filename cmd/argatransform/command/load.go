package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLoadCmd bootstraps a dataset from --schema/--source flags and
// reports how many quads ended up in the store, the nearest analogue
// to "cayley load" in a system with no persistent backend to load
// into — the report is the only thing that survives process exit.
func NewLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load mapping schemas and CSV sources and report what was ingested.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d quads in store\n", ds.Store.Len())
			return nil
		},
	}
	registerBootstrapFlags(cmd)
	return cmd
}
