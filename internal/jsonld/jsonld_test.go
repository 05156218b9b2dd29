package jsonld

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARGA-Genomes/arga-transformer/fields"
	"github.com/ARGA-Genomes/arga-transformer/model"
	"github.com/ARGA-Genomes/arga-transformer/quad"
)

func TestCompactProducesGraphWithRecordIDs(t *testing.T) {
	records := []model.Record{
		{ID: quad.String("T1"), Fields: model.Values{
			"TissueId": fields.Field{Name: "TissueId", Kind: fields.KindString, Str: "T1"},
		}},
	}

	doc, err := Compact("tissue", records)
	require.NoError(t, err)

	graph, ok := doc["@graph"]
	require.True(t, ok, "compacted document should carry a @graph key")
	nodes, ok := graph.([]interface{})
	require.True(t, ok)
	require.Len(t, nodes, 1)
}
