// Package store defines the vector store contract shared by the ingestion
// and query pipelines, and hosts its implementations.
package store

import (
	"context"
	"fmt"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
)

// Metric is the similarity function the collection is created with.
type Metric string

const (
	MetricDotProduct Metric = "dot_product"
	MetricCosine     Metric = "cosine"
	MetricEuclidean  Metric = "euclidean"
)

// ParseMetric maps a config value onto a known metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricDotProduct, MetricCosine, MetricEuclidean:
		return Metric(s), nil
	case "":
		return MetricDotProduct, nil
	}
	return "", fmt.Errorf("store: unknown similarity metric %q", s)
}

// VectorStore persists embedded chunks and answers nearest-neighbor queries.
// Implementations must reject vectors whose length differs from the declared
// dimension rather than coerce them.
type VectorStore interface {
	// EnsureCollection creates the collection with the given vector
	// dimension and metric, or fails if one exists with an incompatible
	// schema.
	EnsureCollection(ctx context.Context, dimension int, metric Metric) error

	// Insert stores one chunk. No deduplication.
	Insert(ctx context.Context, chunk model.Chunk) error

	// Search returns up to limit records ordered by similarity, best first.
	Search(ctx context.Context, vector []float32, limit int) ([]model.SearchResult, error)
}
