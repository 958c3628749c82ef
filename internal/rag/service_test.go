package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
)

type stubEmbedder struct {
	vector  []float32
	err     error
	gotText string
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.gotText = text
	return s.vector, s.err
}

type stubSearcher struct {
	results []model.SearchResult
	err     error
	gotVec  []float32
}

func (s *stubSearcher) Search(_ context.Context, vector []float32, _ int) ([]model.SearchResult, error) {
	s.gotVec = vector
	return s.results, s.err
}

type stubCompleter struct {
	reply     string
	err       error
	gotPrompt string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	return s.reply, s.err
}

func userMessage(content string) model.Message {
	return model.Message{ID: "m-1", Role: model.RoleUser, Content: content}
}

func expectError(t *testing.T, err error, code ErrorCode, reason string) {
	t.Helper()
	var ragErr *Error
	require.ErrorAs(t, err, &ragErr)
	require.Equal(t, code, ragErr.Code)
	require.Equal(t, reason, ragErr.Reason)
}

func TestAnswer_HappyPath(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1, 0.2}}
	searcher := &stubSearcher{results: []model.SearchResult{
		{Text: "Max Verstappen won the 2023 Formula One championship.", Score: 0.95},
	}}
	completer := &stubCompleter{reply: "Max Verstappen."}
	svc := NewService(embedder, searcher, completer, 5)

	msg, err := svc.Answer(context.Background(), []model.Message{userMessage("Who won the 2023 championship?")})
	require.NoError(t, err)
	require.Equal(t, model.RoleAssistant, msg.Role)
	require.Equal(t, "Max Verstappen.", msg.Content)
	require.NotEmpty(t, msg.ID)

	require.Equal(t, "Who won the 2023 championship?", embedder.gotText)
	require.Equal(t, []float32{0.1, 0.2}, searcher.gotVec)
	require.Contains(t, completer.gotPrompt, "Max Verstappen won the 2023 Formula One championship.")
	require.Contains(t, completer.gotPrompt, "QUESTION: Who won the 2023 championship?")
	require.Contains(t, completer.gotPrompt, "ANSWER:")
}

func TestAnswer_UsesLatestMessageOnly(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{1}}
	completer := &stubCompleter{reply: "ok"}
	svc := NewService(embedder, &stubSearcher{}, completer, 5)

	_, err := svc.Answer(context.Background(), []model.Message{
		userMessage("first question"),
		{ID: "m-2", Role: model.RoleAssistant, Content: "first answer"},
		{ID: "m-3", Role: model.RoleUser, Content: "second question"},
	})
	require.NoError(t, err)
	require.Equal(t, "second question", embedder.gotText)
	require.NotContains(t, completer.gotPrompt, "first question")
}

func TestAnswer_EmptyConversationRejected(t *testing.T) {
	svc := NewService(&stubEmbedder{}, &stubSearcher{}, &stubCompleter{}, 5)
	_, err := svc.Answer(context.Background(), nil)
	expectError(t, err, ErrorInvalidInput, "empty_conversation")
}

func TestAnswer_BlankMessageRejected(t *testing.T) {
	svc := NewService(&stubEmbedder{}, &stubSearcher{}, &stubCompleter{}, 5)
	_, err := svc.Answer(context.Background(), []model.Message{userMessage("   \n ")})
	expectError(t, err, ErrorInvalidInput, "blank_message")
}

func TestAnswer_ZeroResultsStillAnswers(t *testing.T) {
	completer := &stubCompleter{reply: "From general knowledge: Verstappen."}
	svc := NewService(&stubEmbedder{vector: []float32{1}}, &stubSearcher{}, completer, 5)

	msg, err := svc.Answer(context.Background(), []model.Message{userMessage("Who won?")})
	require.NoError(t, err)
	require.Equal(t, "From general knowledge: Verstappen.", msg.Content)
	// prompt stays well-formed with an empty context block
	require.Contains(t, completer.gotPrompt, "CONTEXT:\n\n----")
	require.Contains(t, completer.gotPrompt, "QUESTION: Who won?")
}

func TestAnswer_EmptyCompletionFallsBack(t *testing.T) {
	for _, reply := range []string{"", "   "} {
		svc := NewService(&stubEmbedder{vector: []float32{1}}, &stubSearcher{}, &stubCompleter{reply: reply}, 5)
		msg, err := svc.Answer(context.Background(), []model.Message{userMessage("Who won?")})
		require.NoError(t, err)
		require.Equal(t, "Sorry, no response was generated.", msg.Content)
	}
}

func TestAnswer_UpstreamErrors(t *testing.T) {
	boom := errors.New("boom")

	svc := NewService(&stubEmbedder{err: boom}, &stubSearcher{}, &stubCompleter{}, 5)
	_, err := svc.Answer(context.Background(), []model.Message{userMessage("q")})
	expectError(t, err, ErrorUpstream, "embedding_failed")

	svc = NewService(&stubEmbedder{vector: []float32{1}}, &stubSearcher{err: boom}, &stubCompleter{}, 5)
	_, err = svc.Answer(context.Background(), []model.Message{userMessage("q")})
	expectError(t, err, ErrorUpstream, "search_failed")

	svc = NewService(&stubEmbedder{vector: []float32{1}}, &stubSearcher{}, &stubCompleter{err: boom}, 5)
	_, err = svc.Answer(context.Background(), []model.Message{userMessage("q")})
	expectError(t, err, ErrorUpstream, "completion_failed")
}

func TestAnswer_IDsUniqueAcrossCalls(t *testing.T) {
	svc := NewService(&stubEmbedder{vector: []float32{1}}, &stubSearcher{}, &stubCompleter{reply: "ok"}, 5)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		msg, err := svc.Answer(context.Background(), []model.Message{userMessage("q")})
		require.NoError(t, err)
		require.False(t, seen[msg.ID], "duplicate id %s", msg.ID)
		seen[msg.ID] = true
	}
}

func TestBuildPrompt_JoinsChunksWithBlankLines(t *testing.T) {
	block := strings.Join([]string{"chunk one", "chunk two"}, "\n\n")
	prompt := buildPrompt(block, "who?")
	require.Contains(t, prompt, "chunk one\n\nchunk two")
	require.True(t, strings.HasSuffix(strings.TrimRight(prompt, "\n"), "ANSWER:"))
}
