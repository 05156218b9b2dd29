package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ARGA-Genomes/arga-transformer/quad"
)

const flagOut = "out"

// NewTriplesCmd dumps every quad in the bootstrapped store in
// data-model notation, one per line — the nearest analogue to
// dump.go's writerQuadsTo for a store with no registered quad.Format
// writers of its own.
func NewTriplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triples",
		Short: "Dump every quad in the bootstrapped store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			out := os.Stdout
			if path, _ := cmd.Flags().GetString(flagOut); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("triples: creating %s: %w", path, err)
				}
				defer f.Close()
				out = f
			}

			quads := ds.Store.All()
			for _, q := range quads {
				fmt.Fprintf(out, "%s %s %s %s .\n", q.Subject, q.Predicate, q.Object, graphTerm(q.Graph))
			}
			fmt.Fprintf(os.Stderr, "%d quads written\n", len(quads))
			return nil
		},
	}
	registerBootstrapFlags(cmd)
	cmd.Flags().StringP(flagOut, "o", "", "file to write quads to (defaults to stdout)")
	return cmd
}

func graphTerm(g quad.Value) string {
	if g == nil {
		return "<>"
	}
	return g.String()
}
