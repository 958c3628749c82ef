// Package rag implements the per-request pipeline: embed the latest user
// message, retrieve similar chunks, assemble the prompt, complete.
package rag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
)

// The fixed reply used when the completion endpoint returns no text.
const fallbackReply = "Sorry, no response was generated."

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Searcher interface {
	Search(ctx context.Context, vector []float32, limit int) ([]model.SearchResult, error)
}

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	embedder  Embedder
	store     Searcher
	completer Completer
	topK      int
}

func NewService(embedder Embedder, store Searcher, completer Completer, topK int) *Service {
	if topK <= 0 {
		topK = 5
	}
	return &Service{embedder: embedder, store: store, completer: completer, topK: topK}
}

// Answer produces one assistant message for the conversation, newest message
// last. It is stateless across calls and safe for concurrent use.
func (s *Service) Answer(ctx context.Context, messages []model.Message) (model.Message, error) {
	if len(messages) == 0 {
		return model.Message{}, newError(ErrorInvalidInput, "empty_conversation", nil)
	}
	question := strings.TrimSpace(messages[len(messages)-1].Content)
	if question == "" {
		return model.Message{}, newError(ErrorInvalidInput, "blank_message", nil)
	}

	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return model.Message{}, newError(ErrorUpstream, "embedding_failed", err)
	}

	results, err := s.store.Search(ctx, vector, s.topK)
	if err != nil {
		return model.Message{}, newError(ErrorUpstream, "search_failed", err)
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Text
	}
	contextBlock := strings.Join(texts, "\n\n")
	if len(results) == 0 {
		slog.Warn("no chunks retrieved, answering from general knowledge")
	}

	reply, err := s.completer.Complete(ctx, buildPrompt(contextBlock, question))
	if err != nil {
		return model.Message{}, newError(ErrorUpstream, "completion_failed", err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = fallbackReply
	}

	return model.Message{
		ID:      uuid.NewString(),
		Role:    model.RoleAssistant,
		Content: reply,
	}, nil
}
