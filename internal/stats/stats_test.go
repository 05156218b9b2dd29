package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARGA-Genomes/arga-transformer/fields"
	"github.com/ARGA-Genomes/arga-transformer/model"
	"github.com/ARGA-Genomes/arga-transformer/quad"
)

func TestAssemblySummariesComputesMeanAndStdDev(t *testing.T) {
	records := []model.Record{
		{ID: quad.String("0"), Fields: model.Values{
			MetricSize: fields.Field{Name: MetricSize, Kind: fields.KindUInt64, U64: 100},
		}},
		{ID: quad.String("1"), Fields: model.Values{
			MetricSize: fields.Field{Name: MetricSize, Kind: fields.KindUInt64, U64: 200},
		}},
	}

	summaries := AssemblySummaries(records)
	s := summaries[MetricSize]
	require.Equal(t, 2, s.N)
	require.Equal(t, 150.0, s.Mean)
	require.Equal(t, 100.0, s.Min)
	require.Equal(t, 200.0, s.Max)
}

func TestAssemblySummariesExcludesRecordsMissingMetric(t *testing.T) {
	records := []model.Record{
		{ID: quad.String("0"), Fields: model.Values{
			MetricSize: fields.Field{Name: MetricSize, Kind: fields.KindUInt64, U64: 100},
		}},
		{ID: quad.String("1"), Fields: model.Values{}},
	}

	summaries := AssemblySummaries(records)
	require.Equal(t, 1, summaries[MetricSize].N)
	require.Equal(t, 0, summaries[MetricContigN50].N)
}
