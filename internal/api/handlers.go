package api

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Arjunn15/RAG---ChatBot/internal/model"
	"github.com/Arjunn15/RAG---ChatBot/internal/rag"
)

//go:embed ui/index.html
var indexHTML []byte

// requestTimeout bounds one whole pipeline invocation; a hung upstream call
// fails the request instead of the request hanging forever.
const requestTimeout = 60 * time.Second

// ChatService answers one conversation. Implemented by rag.Service.
type ChatService interface {
	Answer(ctx context.Context, messages []model.Message) (model.Message, error)
}

// Handler holds the handlers' dependencies.
type Handler struct {
	chat ChatService
}

func NewHandler(chat ChatService) *Handler {
	return &Handler{chat: chat}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// Index serves the single-page chat UI.
func (h *Handler) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(indexHTML)
}

// Chat runs the query pipeline for one conversation. Upstream detail never
// reaches the client: invalid input gets a 400, everything else collapses
// into one generic 500.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req model.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request, expected JSON: {\"messages\":[...]}",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	reply, err := h.chat.Answer(ctx, req.Messages)
	if err != nil {
		var ragErr *rag.Error
		if errors.As(err, &ragErr) && ragErr.Code == rag.ErrorInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "conversation must contain a non-empty latest message",
			})
		}
		slog.Error("chat pipeline failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	return c.JSON(reply)
}
