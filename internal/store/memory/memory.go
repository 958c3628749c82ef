// Package memory is a brute-force in-process vector store, used in tests and
// for running without external services.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
	"github.com/Arjunn15/RAG---ChatBot/internal/store"
)

type Store struct {
	mu        sync.RWMutex
	dimension int
	metric    store.Metric
	chunks    []model.Chunk
}

func New() *Store { return &Store{} }

var _ store.VectorStore = (*Store)(nil)

func (s *Store) EnsureCollection(_ context.Context, dimension int, metric store.Metric) error {
	if dimension <= 0 {
		return fmt.Errorf("memory: invalid dimension %d", dimension)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dimension != 0 && s.dimension != dimension {
		return fmt.Errorf("memory: collection exists with dimension %d, requested %d", s.dimension, dimension)
	}
	s.dimension = dimension
	s.metric = metric
	return nil
}

func (s *Store) Insert(_ context.Context, chunk model.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(chunk.Vector) != s.dimension {
		return fmt.Errorf("memory: vector dimension %d, collection expects %d", len(chunk.Vector), s.dimension)
	}
	s.chunks = append(s.chunks, chunk)
	return nil
}

func (s *Store) Search(_ context.Context, vector []float32, limit int) ([]model.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(vector) != s.dimension {
		return nil, fmt.Errorf("memory: query dimension %d, collection expects %d", len(vector), s.dimension)
	}
	if limit <= 0 {
		limit = 5
	}

	results := make([]model.SearchResult, 0, len(s.chunks))
	for _, c := range s.chunks {
		results = append(results, model.SearchResult{
			Text:  c.Text,
			Score: similarity(s.metric, c.Vector, vector),
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

// similarity is always "higher is better", so euclidean distance is negated.
func similarity(metric store.Metric, a, b []float32) float64 {
	switch metric {
	case store.MetricCosine:
		na, nb := norm(a), norm(b)
		if na == 0 || nb == 0 {
			return 0
		}
		return dot(a, b) / (na * nb)
	case store.MetricEuclidean:
		var sum float64
		for i := range a {
			d := float64(a[i]) - float64(b[i])
			sum += d * d
		}
		return -math.Sqrt(sum)
	default:
		return dot(a, b)
	}
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func norm(v []float32) float64 { return math.Sqrt(dot(v, v)) }
