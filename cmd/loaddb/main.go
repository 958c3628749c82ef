// Command loaddb runs the one-shot ingestion pipeline: it scrapes the fixed
// list of F1 pages, splits them into chunks, embeds every chunk and inserts
// it into the vector store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Arjunn15/RAG---ChatBot/internal/config"
	"github.com/Arjunn15/RAG---ChatBot/internal/ingest"
	"github.com/Arjunn15/RAG---ChatBot/internal/llm"
	"github.com/Arjunn15/RAG---ChatBot/internal/scrape"
	"github.com/Arjunn15/RAG---ChatBot/internal/splitter"
	"github.com/Arjunn15/RAG---ChatBot/internal/store"
	"github.com/Arjunn15/RAG---ChatBot/internal/store/astra"
	"github.com/Arjunn15/RAG---ChatBot/internal/store/memory"
	"github.com/Arjunn15/RAG---ChatBot/internal/store/pgvector"
)

const (
	chunkSize    = 512
	chunkOverlap = 100
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "err", err)
		os.Exit(1)
	}
	metric, err := store.ParseMetric(cfg.SimilarityMetric)
	if err != nil {
		slog.Error("configuration error", "err", err)
		os.Exit(1)
	}

	vectorStore, err := newStore(cfg)
	if err != nil {
		slog.Error("vector store init failed", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scraper, closeBrowser := scrape.New(ctx)
	defer closeBrowser()

	embedder := llm.NewEmbedder(llm.EmbedderConfig{
		BaseURL:   cfg.EmbedBaseURL,
		APIKey:    cfg.EmbedAPIKey,
		Model:     cfg.EmbedModel,
		Dimension: cfg.EmbedDim,
	})

	pipeline := ingest.NewPipeline(
		scraper,
		splitter.New(chunkSize, chunkOverlap),
		embedder,
		vectorStore,
		cfg.EmbedDim,
		metric,
	)

	slog.Info("loading data", "pages", len(ingest.Sources), "metric", metric)
	report, err := pipeline.Run(ctx, ingest.Sources)
	if err != nil {
		slog.Error("ingestion failed", "err", err)
		os.Exit(1)
	}
	slog.Info("data loaded completely",
		"pages_loaded", report.PagesLoaded,
		"pages_failed", len(report.PagesFailed),
		"chunks", report.Chunks,
		"inserted", report.Inserted,
	)
}

func newStore(cfg *config.Config) (store.VectorStore, error) {
	switch cfg.VectorStore {
	case "astra", "":
		return astra.New(astra.Config{
			Endpoint:   cfg.AstraEndpoint,
			Token:      cfg.AstraToken,
			Keyspace:   cfg.AstraNamespace,
			Collection: cfg.AstraCollection,
		}), nil
	case "pgvector":
		return pgvector.New(cfg.PgConn)
	case "memory":
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown vector store %q", cfg.VectorStore)
}
