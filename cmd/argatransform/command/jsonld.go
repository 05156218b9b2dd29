package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ARGA-Genomes/arga-transformer/internal/jsonld"
	"github.com/ARGA-Genomes/arga-transformer/model"
)

// NewJsonLdCmd resolves --model and compacts its records into a
// JSON-LD document on stdout.
func NewJsonLdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonld",
		Short: "Export a resolved model's records as compact JSON-LD (e.g. --model names).",
		RunE: func(cmd *cobra.Command, args []string) error {
			modelName, err := cmd.Flags().GetString(flagModel)
			if err != nil {
				return err
			}
			if modelName == "" {
				return fmt.Errorf("jsonld: --model is required")
			}

			ds, res, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			recs, err := model.Resolve(modelName, ds, res)
			if err != nil {
				return err
			}

			doc, err := jsonld.Compact(modelName, recs)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
	registerBootstrapFlags(cmd)
	cmd.Flags().String(flagModel, "", "canonical model to export")
	return cmd
}
