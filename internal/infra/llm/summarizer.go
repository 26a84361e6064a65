package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

// TaskConfig bounds one kind of prompt.
type TaskConfig struct {
	MaxChars int
	Timeout  time.Duration
	Options  domain.CompletionOptions
}

// Summarizer implements domain.Summarizer.
type Summarizer struct {
	completer domain.Completer
	cfg       TaskConfig
	logger    *zap.Logger
}

// NewSummarizer creates a Summarizer that prompts completer.
func NewSummarizer(completer domain.Completer, cfg TaskConfig, logger *zap.Logger) *Summarizer {
	return &Summarizer{completer: completer, cfg: cfg, logger: logger}
}

// Summarize asks the model for a summary of the transcript. The transcript is
// cut to the configured character budget first. Blank model output yields
// domain.MessageNoSummary.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	text := truncate(transcript, s.cfg.MaxChars)
	start := time.Now()

	out, err := s.completer.Complete(ctx, summaryPrompt(text), s.cfg.Options)
	if err != nil {
		return "", fmt.Errorf("summarizing transcript: %w", err)
	}

	s.logger.Info("summary generated",
		zap.Int("input_chars", utf8.RuneCountInString(text)),
		zap.Duration("duration", time.Since(start)),
	)

	out = strings.TrimSpace(out)
	if out == "" {
		return domain.MessageNoSummary, nil
	}

	return out, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}
