// Package llm turns transcripts into summaries and keyword lists by prompting
// a language model backend.
package llm

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider"
)

// GateConfig holds pacing and breaker settings for backend calls.
type GateConfig struct {
	RateLimit float64 // requests per second, 0 disables pacing
	RateBurst int
	CB        provider.CBConfig
}

// Gate paces calls to a Completer with a token bucket and guards them with a
// circuit breaker. It never retries.
type Gate struct {
	next    domain.Completer
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[string]
	logger  *zap.Logger
}

// NewGate wraps next.
func NewGate(next domain.Completer, cfg GateConfig, logger *zap.Logger) *Gate {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &Gate{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		cb:      provider.NewCircuitBreaker[string]("llm", cfg.CB, logger),
		logger:  logger,
	}
}

// Complete implements domain.Completer.
func (g *Gate) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for language model slot: %w", err)
	}

	out, err := g.cb.Execute(func() (string, error) {
		return g.next.Complete(ctx, prompt, opts)
	})
	if err != nil {
		g.logger.Warn("language model call failed",
			zap.Error(err),
			zap.String("state", g.cb.State().String()),
		)

		return "", err
	}

	return out, nil
}
