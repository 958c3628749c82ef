package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/Arjunn15/RAG---ChatBot/internal/api"
	"github.com/Arjunn15/RAG---ChatBot/internal/config"
	"github.com/Arjunn15/RAG---ChatBot/internal/llm"
	"github.com/Arjunn15/RAG---ChatBot/internal/rag"
	"github.com/Arjunn15/RAG---ChatBot/internal/store"
	"github.com/Arjunn15/RAG---ChatBot/internal/store/astra"
	"github.com/Arjunn15/RAG---ChatBot/internal/store/memory"
	"github.com/Arjunn15/RAG---ChatBot/internal/store/pgvector"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "err", err)
		os.Exit(1)
	}

	vectorStore, err := newStore(cfg)
	if err != nil {
		slog.Error("vector store init failed", "err", err)
		os.Exit(1)
	}

	embedder := llm.NewEmbedder(llm.EmbedderConfig{
		BaseURL:   cfg.EmbedBaseURL,
		APIKey:    cfg.EmbedAPIKey,
		Model:     cfg.EmbedModel,
		Dimension: cfg.EmbedDim,
	})
	completer := llm.NewCompleter(llm.CompleterConfig{
		BaseURL: cfg.TogetherBaseURL,
		APIKey:  cfg.TogetherAPIKey,
		Model:   cfg.ChatModel,
	})

	service := rag.NewService(embedder, vectorStore, completer, cfg.TopK)

	app := fiber.New()
	api.RegisterRoutes(app, service)

	slog.Info("server started", "addr", cfg.ServerAddr, "store", cfg.VectorStore)
	if err := app.Listen(cfg.ServerAddr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
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
		metric, err := store.ParseMetric(cfg.SimilarityMetric)
		if err != nil {
			return nil, err
		}
		// memory starts empty, so the collection is declared up front
		s := memory.New()
		if err := s.EnsureCollection(context.Background(), cfg.EmbedDim, metric); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown vector store %q", cfg.VectorStore)
}
