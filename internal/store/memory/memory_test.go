package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
	"github.com/Arjunn15/RAG---ChatBot/internal/store"
)

func TestRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.EnsureCollection(ctx, 3, store.MetricDotProduct))

	require.NoError(t, s.Insert(ctx, model.Chunk{Vector: []float32{1, 0, 0}, Text: "verstappen"}))
	require.NoError(t, s.Insert(ctx, model.Chunk{Vector: []float32{0, 1, 0}, Text: "hamilton"}))
	require.NoError(t, s.Insert(ctx, model.Chunk{Vector: []float32{0, 0, 1}, Text: "leclerc"}))

	results, err := s.Search(ctx, []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "verstappen", results[0].Text)
}

func TestDimensionMismatchRejected(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.EnsureCollection(ctx, 3, store.MetricDotProduct))

	err := s.Insert(ctx, model.Chunk{Vector: []float32{1, 0}, Text: "short"})
	require.Error(t, err)

	_, err = s.Search(ctx, []float32{1, 0, 0, 0}, 5)
	require.Error(t, err)
}

func TestEnsureCollection_IncompatibleDimension(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.EnsureCollection(ctx, 3, store.MetricDotProduct))
	require.NoError(t, s.EnsureCollection(ctx, 3, store.MetricDotProduct)) // idempotent
	require.Error(t, s.EnsureCollection(ctx, 4, store.MetricDotProduct))
}

func TestSearchHonorsMetric(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		metric store.Metric
		query  []float32
		want   string
	}{
		// dot product favors magnitude
		{store.MetricDotProduct, []float32{1, 0}, "big"},
		// cosine ignores magnitude, favors direction
		{store.MetricCosine, []float32{0, 1}, "up"},
		// euclidean favors the nearest point
		{store.MetricEuclidean, []float32{0.1, 0.1}, "near"},
	}
	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			s := New()
			require.NoError(t, s.EnsureCollection(ctx, 2, tt.metric))
			require.NoError(t, s.Insert(ctx, model.Chunk{Vector: []float32{10, 0}, Text: "big"}))
			require.NoError(t, s.Insert(ctx, model.Chunk{Vector: []float32{0, 0.5}, Text: "up"}))
			require.NoError(t, s.Insert(ctx, model.Chunk{Vector: []float32{0.2, 0.2}, Text: "near"}))

			results, err := s.Search(ctx, tt.query, 1)
			require.NoError(t, err)
			require.Equal(t, tt.want, results[0].Text)
		})
	}
}

func TestSearchEmptyStore(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.EnsureCollection(ctx, 2, store.MetricDotProduct))
	results, err := s.Search(ctx, []float32{1, 0}, 5)
	require.NoError(t, err)
	require.Empty(t, results)
}
