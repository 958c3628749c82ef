package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, chat ChatService) {
	h := NewHandler(chat)

	app.Get("/health", h.Health)
	app.Get("/", h.Index)
	app.Post("/api/chat", h.Chat)
}
