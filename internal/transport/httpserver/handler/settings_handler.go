package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver/dto"
	"github.com/kenobicjj/youtubeanalystAPI/internal/validator"
)

const (
	messageAPIKeyRequired = "API key is required."
	messageAPIKeySaved    = "API key saved successfully."
	messageAPIKeyFailed   = "Could not save API key."
)

// SettingsHandler handles credential updates.
type SettingsHandler struct {
	store     domain.CredentialStore
	validator *validator.Validator
	logger    *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store domain.CredentialStore, v *validator.Validator, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		store:     store,
		validator: v,
		logger:    logger,
	}
}

// SaveAPIKey handles POST /save_api_key
func (h *SettingsHandler) SaveAPIKey(c *fiber.Ctx) error {
	var req dto.SaveAPIKeyRequest
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: messageAPIKeyRequired})
	}

	if err := h.validator.Validate(&req); err != nil {
		message := err.Error()

		var errs validator.ValidationErrors
		if errors.As(err, &errs) && errs.Has("apiKey", "required") {
			message = messageAPIKeyRequired
		}

		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: message})
	}

	if err := h.store.SaveAPIKey(c.UserContext(), req.APIKey); err != nil {
		h.logger.Error("saving api key failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: messageAPIKeyFailed})
	}

	return c.JSON(dto.MessageResponse{Message: messageAPIKeySaved})
}
