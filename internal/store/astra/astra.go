// Package astra is a minimal JSON Data API client for DataStax Astra DB,
// covering the three operations the pipelines need: createCollection,
// insertOne and vector-sorted find.
package astra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
	"github.com/Arjunn15/RAG---ChatBot/internal/store"
)

type Config struct {
	Endpoint   string // https://<db-id>-<region>.apps.astra.datastax.com
	Token      string
	Keyspace   string
	Collection string
	Timeout    time.Duration
}

type Client struct {
	endpoint   string
	token      string
	keyspace   string
	collection string
	client     *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		token:      cfg.Token,
		keyspace:   cfg.Keyspace,
		collection: cfg.Collection,
		client:     &http.Client{Timeout: timeout},
	}
}

var _ store.VectorStore = (*Client)(nil)

// apiError is one entry of the Data API "errors" array.
type apiError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

type apiResponse struct {
	Status json.RawMessage `json:"status"`
	Data   *struct {
		Documents []struct {
			Text       string  `json:"text"`
			Similarity float64 `json:"$similarity"`
		} `json:"documents"`
	} `json:"data"`
	Errors []apiError `json:"errors"`
}

func (c *Client) EnsureCollection(ctx context.Context, dimension int, metric store.Metric) error {
	body := map[string]any{
		"createCollection": map[string]any{
			"name": c.collection,
			"options": map[string]any{
				"vector": map[string]any{
					"dimension": dimension,
					"metric":    string(metric),
				},
			},
		},
	}
	// createCollection is idempotent for a matching schema; the API errors
	// when the existing collection differs, and that error is propagated.
	_, err := c.post(ctx, c.keyspaceURL(), body)
	if err != nil {
		return fmt.Errorf("astra: create collection %s: %w", c.collection, err)
	}
	return nil
}

func (c *Client) Insert(ctx context.Context, chunk model.Chunk) error {
	body := map[string]any{
		"insertOne": map[string]any{
			"document": map[string]any{
				"$vector": chunk.Vector,
				"text":    chunk.Text,
			},
		},
	}
	if _, err := c.post(ctx, c.collectionURL(), body); err != nil {
		return fmt.Errorf("astra: insert: %w", err)
	}
	return nil
}

func (c *Client) Search(ctx context.Context, vector []float32, limit int) ([]model.SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}
	body := map[string]any{
		"find": map[string]any{
			"sort": map[string]any{"$vector": vector},
			"options": map[string]any{
				"limit":             limit,
				"includeSimilarity": true,
			},
		},
	}
	resp, err := c.post(ctx, c.collectionURL(), body)
	if err != nil {
		return nil, fmt.Errorf("astra: find: %w", err)
	}
	if resp.Data == nil {
		return nil, nil
	}
	results := make([]model.SearchResult, 0, len(resp.Data.Documents))
	for _, doc := range resp.Data.Documents {
		results = append(results, model.SearchResult{Text: doc.Text, Score: doc.Similarity})
	}
	return results, nil
}

func (c *Client) keyspaceURL() string {
	return fmt.Sprintf("%s/api/json/v1/%s", c.endpoint, c.keyspace)
}

func (c *Client) collectionURL() string {
	return fmt.Sprintf("%s/api/json/v1/%s/%s", c.endpoint, c.keyspace, c.collection)
}

func (c *Client) post(ctx context.Context, url string, body any) (*apiResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("POST %s failed: %s", url, resp.Status)
	}
	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Errors) > 0 {
		first := out.Errors[0]
		return nil, fmt.Errorf("data api error %s: %s", first.ErrorCode, first.Message)
	}
	return &out, nil
}
