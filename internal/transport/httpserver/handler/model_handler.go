package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/app/service"
	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver/dto"
)

// ModelChecker reports the state of the language model server.
type ModelChecker interface {
	Check(ctx context.Context) service.ModelStatus
}

// ModelHandler handles language model server checks.
type ModelHandler struct {
	checker ModelChecker
	logger  *zap.Logger
}

// NewModelHandler creates a new ModelHandler.
func NewModelHandler(checker ModelChecker, logger *zap.Logger) *ModelHandler {
	return &ModelHandler{
		checker: checker,
		logger:  logger,
	}
}

// Check handles GET /check_ollama
// Failures are reported in the body with status 200 so the page can show them.
func (h *ModelHandler) Check(c *fiber.Ctx) error {
	status := h.checker.Check(c.UserContext())

	return c.JSON(dto.FromModelStatus(status))
}
