package qdrant

import (
	"testing"

	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

func TestExtractValue(t *testing.T) {
	tests := []struct {
		name string
		in   *qdrant.Value
		want any
	}{
		{"nil", nil, nil},
		{"null", qdrant.NewValueNull(), nil},
		{"string", qdrant.NewValueString("hello"), "hello"},
		{"integer", qdrant.NewValueInt(42), int64(42)},
		{"double", qdrant.NewValueDouble(1.5), 1.5},
		{"bool", qdrant.NewValueBool(true), true},
		{
			"list",
			qdrant.NewValueFromList(qdrant.NewValueInt(1), qdrant.NewValueString("a")),
			[]any{int64(1), "a"},
		},
		{
			"struct",
			qdrant.NewValueStruct(&qdrant.Struct{Fields: map[string]*qdrant.Value{
				"nested": qdrant.NewValueBool(false),
			}}),
			map[string]any{"nested": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractValue(tt.in))
		})
	}
}

func TestParseSearchResults(t *testing.T) {
	resp := []*qdrant.ScoredPoint{
		{
			Id:      qdrant.NewIDNum(2),
			Score:   0.99,
			Payload: map[string]*qdrant.Value{"type": qdrant.NewValueString("test")},
		},
		{
			Id:    qdrant.NewIDUUID("5c56c793-69f3-4fbf-87e6-c4bf54c28c26"),
			Score: 0.5,
		},
	}

	results, err := parseSearchResults(resp)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "2", results[0].ID)
	assert.InDelta(t, 0.99, results[0].Score, 1e-6)
	assert.Equal(t, map[string]any{"type": "test"}, results[0].Payload)

	assert.Equal(t, "5c56c793-69f3-4fbf-87e6-c4bf54c28c26", results[1].ID)
	assert.Empty(t, results[1].Payload)
}

func TestParseSearchResultsRejectsMissingID(t *testing.T) {
	_, err := parseSearchResults([]*qdrant.ScoredPoint{{Score: 1}})
	assert.Error(t, err)
}

func TestDistanceRoundTrip(t *testing.T) {
	for _, d := range []vectordb.Distance{vectordb.Cosine, vectordb.Euclid, vectordb.Dot, vectordb.Manhattan} {
		q, err := toQdrantDistance(d)
		require.NoError(t, err)
		assert.Equal(t, d, fromQdrantDistance(q))
	}

	_, err := toQdrantDistance("Hamming")
	assert.Error(t, err)
}

func TestConvertFilterSet(t *testing.T) {
	assert.Nil(t, convertFilterSet(nil))

	// Unsupported values produce no condition, so the filter collapses to nil.
	assert.Nil(t, convertFilterSet(vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("f", 1.5)))))

	filter := convertFilterSet(vectordb.NewFilterSet(
		vectordb.Must(vectordb.NewMatch("type", "greeting"), vectordb.NewMatch("n", 3)),
		vectordb.Should(vectordb.NewMatchAny("type", "test", "search")),
		vectordb.MustNot(vectordb.NewIsEmpty("text")),
	))
	require.NotNil(t, filter)
	assert.Len(t, filter.Must, 2)
	assert.Len(t, filter.Should, 1)
	assert.Len(t, filter.MustNot, 1)

	match := filter.Must[0].GetField()
	require.NotNil(t, match)
	assert.Equal(t, "type", match.GetKey())
	assert.Equal(t, "greeting", match.GetMatch().GetKeyword())

	assert.Equal(t, []string{"test", "search"}, filter.Should[0].GetField().GetMatch().GetKeywords().GetStrings())
	assert.Equal(t, "text", filter.MustNot[0].GetIsEmpty().GetKey())
}

func TestExtractVectorDetails(t *testing.T) {
	info := &qdrant.CollectionInfo{
		Config: &qdrant.CollectionConfig{
			Params: &qdrant.CollectionParams{
				VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{Size: 4, Distance: qdrant.Distance_Cosine}),
			},
		},
	}

	size, distance := extractVectorDetails(info)
	assert.Equal(t, 4, size)
	assert.Equal(t, vectordb.Cosine, distance)

	size, distance = extractVectorDetails(&qdrant.CollectionInfo{})
	assert.Zero(t, size)
	assert.Empty(t, distance)
}

func TestValidateSearchInput(t *testing.T) {
	assert.NoError(t, validateSearchInput("c", []float32{1}, 1))
	assert.Error(t, validateSearchInput("", []float32{1}, 1))
	assert.Error(t, validateSearchInput("c", nil, 1))
	assert.Error(t, validateSearchInput("c", []float32{1}, 0))
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, "localhost:6334", cfg.Addr())
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)

	built := FromEndpoint("qdrant").WithApiKey("k").WithTimeout(0).WithTLS(true)
	assert.Equal(t, "qdrant", built.Endpoint)
	assert.Equal(t, "k", built.ApiKey)
	assert.True(t, built.UseTLS)
}
