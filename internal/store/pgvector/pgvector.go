// Package pgvector stores chunks in Postgres with the pgvector extension.
package pgvector

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
	"github.com/Arjunn15/RAG---ChatBot/internal/store"
)

type Store struct {
	db     *sql.DB
	metric store.Metric
}

func New(conn string) (*Store, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

var _ store.VectorStore = (*Store)(nil)

func (s *Store) EnsureCollection(ctx context.Context, dimension int, metric store.Metric) error {
	if dimension <= 0 {
		return fmt.Errorf("pgvector: invalid dimension %d", dimension)
	}
	opclass, err := metricOpclass(metric)
	if err != nil {
		return err
	}
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS chunks (
			id SERIAL PRIMARY KEY,
			text TEXT NOT NULL,
			embedding vector(%d) NOT NULL
		)`, dimension),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS chunks_embedding_idx
			ON chunks USING ivfflat (embedding %s) WITH (lists=100)`, opclass),
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("pgvector: ensure schema: %w", err)
		}
	}
	s.metric = metric
	// ivfflat needs statistics to pick lists
	_, _ = s.db.ExecContext(ctx, `ANALYZE chunks`)
	return nil
}

func (s *Store) Insert(ctx context.Context, chunk model.Chunk) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chunks (text, embedding)
		VALUES ($1, $2::vector)
	`, chunk.Text, vectorLiteral(chunk.Vector))
	if err != nil {
		return fmt.Errorf("pgvector: insert: %w", err)
	}
	return nil
}

func (s *Store) Search(ctx context.Context, vector []float32, limit int) ([]model.SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}
	op, err := metricOperator(s.metric)
	if err != nil {
		return nil, err
	}
	// the operators return distance, so similarity is its negation
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT text, -(embedding %s $1::vector) AS score
		FROM chunks
		ORDER BY embedding %s $1::vector
		LIMIT $2
	`, op, op), vectorLiteral(vector), limit)
	if err != nil {
		return nil, fmt.Errorf("pgvector: search: %w", err)
	}
	defer rows.Close()

	var results []model.SearchResult
	for rows.Next() {
		var r model.SearchResult
		if err := rows.Scan(&r.Text, &r.Score); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Store) Close() error { return s.db.Close() }

func metricOperator(m store.Metric) (string, error) {
	switch m {
	case store.MetricDotProduct, "":
		return "<#>", nil
	case store.MetricCosine:
		return "<=>", nil
	case store.MetricEuclidean:
		return "<->", nil
	}
	return "", fmt.Errorf("pgvector: unsupported metric %q", m)
}

func metricOpclass(m store.Metric) (string, error) {
	switch m {
	case store.MetricDotProduct, "":
		return "vector_ip_ops", nil
	case store.MetricCosine:
		return "vector_cosine_ops", nil
	case store.MetricEuclidean:
		return "vector_l2_ops", nil
	}
	return "", fmt.Errorf("pgvector: unsupported metric %q", m)
}

func vectorLiteral(v []float32) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, f := range v {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf("%.6f", float64(f)))
	}
	sb.WriteString("]")
	return sb.String()
}
