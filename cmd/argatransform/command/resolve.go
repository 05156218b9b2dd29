package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ARGA-Genomes/arga-transformer/model"
)

const flagModel = "model"

// NewResolveCmd resolves one canonical model's records over the
// bootstrapped dataset and prints them one per line, field=value
// pairs sorted by field name for deterministic output.
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a canonical model's records (e.g. --model tissues).",
		RunE: func(cmd *cobra.Command, args []string) error {
			modelName, err := cmd.Flags().GetString(flagModel)
			if err != nil {
				return err
			}
			if modelName == "" {
				return fmt.Errorf("resolve: --model is required")
			}

			ds, res, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			recs, err := model.Resolve(modelName, ds, res)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, rec := range recs {
				fmt.Fprintf(out, "%s: %s\n", rec.ID.Text(), formatFields(rec.Fields))
			}
			fmt.Fprintf(out, "%d %s records\n", len(recs), modelName)
			return nil
		},
	}
	registerBootstrapFlags(cmd)
	cmd.Flags().String(flagModel, "", "canonical model to resolve")
	return cmd
}

func formatFields(values model.Values) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, values[name]))
	}
	return strings.Join(parts, " ")
}
