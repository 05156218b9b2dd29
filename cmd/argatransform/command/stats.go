package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ARGA-Genomes/arga-transformer/internal/stats"
	"github.com/ARGA-Genomes/arga-transformer/model"
)

// NewStatsCmd resolves the assembly model and prints descriptive
// statistics over its numeric metrics.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize resolved assembly metrics (genome size, N50, GC%).",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, res, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			recs, err := model.Assemblies(ds, res)
			if err != nil {
				return err
			}
			summaries := stats.AssemblySummaries(recs)
			out := cmd.OutOrStdout()
			for _, metric := range []string{stats.MetricSize, stats.MetricContigN50, stats.MetricGuanineCytosinePercent} {
				s := summaries[metric]
				fmt.Fprintf(out, "%-24s n=%-6d mean=%-12.2f stddev=%-12.2f min=%-12.2f max=%.2f\n",
					s.Field, s.N, s.Mean, s.StdDev, s.Min, s.Max)
			}
			return nil
		},
	}
	registerBootstrapFlags(cmd)
	return cmd
}
