package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vastrarent/vastra-rental-be/internal/chatbot"
)

type HealthHandler struct {
	kb *chatbot.KBProvider
}

func NewHealthHandler(kb *chatbot.KBProvider) *HealthHandler {
	return &HealthHandler{kb: kb}
}

// GetHealth checks if the API is alive
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "vastra-rental-api",
		"company": h.kb.Current().Company.Name,
	})
}
