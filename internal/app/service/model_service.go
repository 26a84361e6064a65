package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

// ModelStatus is the outcome of a language model server check.
type ModelStatus struct {
	OK      bool
	Models  []domain.ModelInfo
	Message string
}

// ModelService reports which models the language model server offers.
type ModelService struct {
	lister domain.ModelLister
	model  string
	logger *zap.Logger
}

// NewModelService creates a new ModelService. model is the configured
// generation model; it is only used to warn when the server lacks it.
func NewModelService(lister domain.ModelLister, model string, logger *zap.Logger) *ModelService {
	return &ModelService{
		lister: lister,
		model:  model,
		logger: logger,
	}
}

// Check lists the installed models. Failures are reported in the status
// message rather than as an error: a refused connection, an error status and
// anything else each get their own message.
func (s *ModelService) Check(ctx context.Context) ModelStatus {
	start := time.Now()

	models, err := s.lister.ListModels(ctx)
	if err != nil {
		s.logger.Warn("language model server check failed", zap.Error(err))

		return ModelStatus{Message: checkMessage(err)}
	}

	if s.model != "" && !hasModel(models, s.model) {
		s.logger.Warn("configured model is not installed",
			zap.String("model", s.model),
			zap.Int("installed", len(models)),
		)
	}

	s.logger.Debug("language model server check completed",
		zap.Int("models", len(models)),
		zap.Duration("duration", time.Since(start)),
	)

	return ModelStatus{OK: true, Models: models}
}

func checkMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrModelServerUnreachable):
		return domain.MessageModelServerUnreachable
	case errors.Is(err, domain.ErrUpstreamStatus):
		return domain.MessageModelServerStatus
	default:
		return domain.MessageModelCheckPrefix + err.Error()
	}
}

// hasModel matches "gemma3" against "gemma3" and "gemma3:latest".
func hasModel(models []domain.ModelInfo, name string) bool {
	return slices.ContainsFunc(models, func(m domain.ModelInfo) bool {
		return m.Name == name || strings.HasPrefix(m.Name, name+":")
	})
}
