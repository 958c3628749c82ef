package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the full runtime configuration, read once from the environment.
// The Astra and Together values have no defaults: running without them is a
// misconfiguration and Load fails instead of carrying empty strings into
// request paths.
type Config struct {
	ServerAddr string

	// Astra DB Data API.
	AstraNamespace  string
	AstraCollection string
	AstraEndpoint   string
	AstraToken      string

	// Together completions.
	TogetherAPIKey  string
	TogetherBaseURL string
	ChatModel       string

	// OpenAI-compatible embeddings endpoint.
	EmbedBaseURL string
	EmbedAPIKey  string
	EmbedModel   string
	EmbedDim     int

	// Vector store selection: "astra", "pgvector" or "memory".
	VectorStore string
	PgConn      string

	SimilarityMetric string
	TopK             int
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:       getenv("SERVER_ADDR", ":8080"),
		TogetherBaseURL:  getenv("TOGETHER_BASE_URL", "https://api.together.xyz/v1"),
		ChatModel:        getenv("LLM_MODEL", "mistralai/Mistral-7B-Instruct-v0.1"),
		EmbedBaseURL:     getenv("EMBED_BASE_URL", "http://localhost:1234/v1"),
		EmbedAPIKey:      getenv("EMBED_API_KEY", "not-needed"),
		EmbedModel:       getenv("EMBED_MODEL", "all-MiniLM-L6-v2"),
		EmbedDim:         getenvInt("EMBED_DIM", 384),
		VectorStore:      getenv("VECTOR_STORE", "astra"),
		PgConn:           getenv("PG_CONN", ""),
		SimilarityMetric: getenv("SIMILARITY_METRIC", "dot_product"),
		TopK:             getenvInt("TOP_K", 5),
	}

	var err error
	if cfg.AstraNamespace, err = requireEnv("ASTRA_DB_NAMESPACE"); err != nil {
		return nil, err
	}
	if cfg.AstraCollection, err = requireEnv("ASTRA_DB_COLLECTION"); err != nil {
		return nil, err
	}
	if cfg.AstraEndpoint, err = requireEnv("ASTRA_DB_API_ENDPOINT"); err != nil {
		return nil, err
	}
	if cfg.AstraToken, err = requireEnv("ASTRA_DB_APPLICATION_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.TogetherAPIKey, err = requireEnv("TOGETHER_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.VectorStore == "pgvector" && cfg.PgConn == "" {
		return nil, fmt.Errorf("config: PG_CONN is required when VECTOR_STORE=pgvector")
	}
	return cfg, nil
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("config: required environment variable %s is not set", key)
	}
	return v, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
