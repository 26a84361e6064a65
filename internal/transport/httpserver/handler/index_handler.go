package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IndexHandler serves the analyzer web page.
type IndexHandler struct {
	model  string
	logger *zap.Logger
}

// NewIndexHandler creates a new IndexHandler. model is shown as the default
// choice in the model selector.
func NewIndexHandler(model string, logger *zap.Logger) *IndexHandler {
	return &IndexHandler{
		model:  model,
		logger: logger,
	}
}

// Render handles GET /
func (h *IndexHandler) Render(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "YouTube Video Analyzer",
		"Model": h.model,
	})
}
