package model

// Roles a chat message may carry.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation. Messages live only in the
// browser's page state; the server never persists them.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat: the full conversation so far,
// newest message last.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// Chunk is a stored record: one embedded piece of a scraped page.
type Chunk struct {
	Vector []float32 `json:"vector"`
	Text   string    `json:"text"`
}

// SearchResult is one nearest-neighbor hit, most similar first.
type SearchResult struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
