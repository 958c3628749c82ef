// Package ingest implements the offline pipeline that populates the vector
// store: scrape each source page, split it into chunks, embed every chunk
// and insert it.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
	"github.com/Arjunn15/RAG---ChatBot/internal/store"
)

type Scraper interface {
	Text(ctx context.Context, url string) (string, error)
}

type Splitter interface {
	Split(text string) []string
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Pipeline struct {
	scraper  Scraper
	splitter Splitter
	embedder Embedder
	store    store.VectorStore

	dimension int
	metric    store.Metric
}

func NewPipeline(scraper Scraper, splitter Splitter, embedder Embedder, s store.VectorStore, dimension int, metric store.Metric) *Pipeline {
	return &Pipeline{
		scraper:   scraper,
		splitter:  splitter,
		embedder:  embedder,
		store:     s,
		dimension: dimension,
		metric:    metric,
	}
}

// Report summarizes one ingestion run.
type Report struct {
	PagesLoaded int
	PagesFailed []string
	Chunks      int
	Inserted    int
}

// Run processes every URL once and returns. A page that fails to scrape is
// logged and skipped; a chunk that fails to embed or insert is logged and
// skipped. Only collection setup is fatal.
func (p *Pipeline) Run(ctx context.Context, urls []string) (Report, error) {
	var report Report

	if err := p.store.EnsureCollection(ctx, p.dimension, p.metric); err != nil {
		return report, fmt.Errorf("ingest: collection setup: %w", err)
	}

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		text, err := p.scraper.Text(ctx, url)
		if err != nil {
			slog.Error("scrape failed, skipping page", "url", url, "err", err)
			report.PagesFailed = append(report.PagesFailed, url)
			continue
		}

		chunks := p.splitter.Split(text)
		slog.Info("page scraped", "url", url, "chunks", len(chunks))
		report.PagesLoaded++
		report.Chunks += len(chunks)

		for _, chunk := range chunks {
			vector, err := p.embedder.Embed(ctx, chunk)
			if err != nil {
				slog.Error("embedding failed, skipping chunk", "url", url, "err", err)
				continue
			}
			if err := p.store.Insert(ctx, model.Chunk{Vector: vector, Text: chunk}); err != nil {
				slog.Error("insert failed, skipping chunk", "url", url, "err", err)
				continue
			}
			report.Inserted++
		}
	}
	return report, nil
}
