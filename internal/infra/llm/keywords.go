package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

// KeywordExtractor implements domain.KeywordExtractor.
type KeywordExtractor struct {
	completer domain.Completer
	cfg       TaskConfig
	logger    *zap.Logger
}

// NewKeywordExtractor creates a KeywordExtractor that prompts completer.
func NewKeywordExtractor(completer domain.Completer, cfg TaskConfig, logger *zap.Logger) *KeywordExtractor {
	return &KeywordExtractor{completer: completer, cfg: cfg, logger: logger}
}

// ExtractKeywords asks the model for a comma-separated keyword list. Every
// term gets score 1 and at most domain.MaxKeywords are returned.
func (k *KeywordExtractor) ExtractKeywords(ctx context.Context, transcript string) ([]domain.Keyword, error) {
	ctx, cancel := withTimeout(ctx, k.cfg.Timeout)
	defer cancel()

	out, err := k.completer.Complete(ctx, keywordsPrompt(truncate(transcript, k.cfg.MaxChars)), k.cfg.Options)
	if err != nil {
		return nil, fmt.Errorf("extracting keywords: %w", err)
	}

	keywords := parseKeywords(out, domain.MaxKeywords)
	k.logger.Debug("keywords extracted", zap.Int("count", len(keywords)))

	return keywords, nil
}
