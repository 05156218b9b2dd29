// Package stats computes descriptive statistics over resolved
// numeric assembly metrics (genome size, contig N50, GC%), the one
// place in this system that needed a numeric library the core
// resolver/store never did — gonum's stat package, the way the rest
// of the retrieval pack reaches for gonum for exactly this kind of
// summary.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ARGA-Genomes/arga-transformer/model"
)

// Summary holds the descriptive statistics for one numeric field
// across a set of resolved Assembly records.
type Summary struct {
	Field  string
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func summarize(field string, values []float64) Summary {
	if len(values) == 0 {
		return Summary{Field: field}
	}
	mean, stddev := stat.MeanStdDev(values, nil)
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Summary{Field: field, N: len(values), Mean: mean, StdDev: stddev, Min: min, Max: max}
}

// AssemblyMetric names one of Assembly's numeric fields this package
// summarizes.
const (
	MetricSize                   = "Size"
	MetricContigN50              = "ContigN50"
	MetricGuanineCytosinePercent = "GuanineCytosinePercent"
)

var assemblyMetrics = []string{MetricSize, MetricContigN50, MetricGuanineCytosinePercent}

// AssemblySummaries computes a Summary per numeric metric across
// every resolved Assembly record that carries a value for it;
// records missing a given metric are excluded from that metric's
// Summary rather than counted as zero.
func AssemblySummaries(records []model.Record) map[string]Summary {
	byMetric := make(map[string][]float64, len(assemblyMetrics))
	for _, metric := range assemblyMetrics {
		byMetric[metric] = nil
	}
	for _, rec := range records {
		for _, metric := range assemblyMetrics {
			if f, ok := rec.Fields[metric]; ok {
				byMetric[metric] = append(byMetric[metric], float64(f.U64))
			}
		}
	}

	out := make(map[string]Summary, len(assemblyMetrics))
	for _, metric := range assemblyMetrics {
		out[metric] = summarize(metric, byMetric[metric])
	}
	return out
}
