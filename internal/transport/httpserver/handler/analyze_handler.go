// Package handler provides HTTP handlers for the API.
package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver/dto"
	"github.com/kenobicjj/youtubeanalystAPI/internal/validator"
)

const messageNoURL = "No URL provided"

// ReportAnalyzer runs the analysis pipeline for one video URL.
type ReportAnalyzer interface {
	Analyze(ctx context.Context, rawURL string) (*domain.AnalysisReport, error)
}

// AnalyzeHandler handles video analysis requests.
type AnalyzeHandler struct {
	analyzer  ReportAnalyzer
	validator *validator.Validator
	logger    *zap.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzer ReportAnalyzer, v *validator.Validator, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:  analyzer,
		validator: v,
		logger:    logger,
	}
}

// Analyze handles POST /analyze
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && errs.Has("url", "required") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: messageNoURL})
		}

		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	if req.OllamaModel != "" {
		h.logger.Debug("model selection ignored", zap.String("requested_model", req.OllamaModel))
	}

	report, err := h.analyzer.Analyze(c.UserContext(), req.URL)
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: domain.MessageInvalidURL})
	case errors.Is(err, domain.ErrVideoUnavailable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: domain.MessageVideoUnavailable})
	case err != nil:
		h.logger.Error("analysis failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "analysis failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromReport(report))
}

// parseBody decodes a JSON body. An empty body leaves out untouched.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}

	return c.BodyParser(out)
}
