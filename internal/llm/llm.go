// Package llm holds the clients for the two hosted model endpoints: an
// OpenAI-compatible embeddings server and the Together completions API.
package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Embedder maps text onto fixed-length vectors via an OpenAI-compatible
// /v1/embeddings endpoint.
type Embedder struct {
	client    *openai.Client
	model     string
	dimension int
}

type EmbedderConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	Dimension int
}

func NewEmbedder(cfg EmbedderConfig) *Embedder {
	oaiCfg := openai.DefaultConfig(cfg.APIKey)
	oaiCfg.BaseURL = cfg.BaseURL
	return &Embedder{
		client:    openai.NewClientWithConfig(oaiCfg),
		model:     cfg.Model,
		dimension: cfg.Dimension,
	}
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(e.model),
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("llm: embed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("llm: embed: empty response")
	}
	vec := resp.Data[0].Embedding
	if e.dimension > 0 && len(vec) != e.dimension {
		return nil, fmt.Errorf("llm: embed: got %d-dim vector, want %d", len(vec), e.dimension)
	}
	return vec, nil
}

// Generation parameters are fixed; the prompt is the only per-request input.
const (
	maxTokens   = 300
	temperature = 0.7
	topP        = 0.9
)

var stopSequences = []string{"\n\n", "USER:", "Question:", "Q:"}

// Completer calls a hosted completion endpoint in legacy prompt style.
type Completer struct {
	client *openai.Client
	model  string
}

type CompleterConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

func NewCompleter(cfg CompleterConfig) *Completer {
	oaiCfg := openai.DefaultConfig(cfg.APIKey)
	oaiCfg.BaseURL = cfg.BaseURL
	return &Completer{
		client: openai.NewClientWithConfig(oaiCfg),
		model:  cfg.Model,
	}
}

// Complete returns the first choice's text, whitespace-trimmed. An empty
// choice list yields an empty string and no error; the caller decides the
// fallback wording.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
		Stop:        stopSequences,
	})
	if err != nil {
		return "", fmt.Errorf("llm: complete: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Text), nil
}
