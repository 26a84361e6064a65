// Package ollama implements the language model backend for a local Ollama
// server.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider"
)

// API paths of the Ollama server.
const (
	GeneratePath = "/api/generate"
	TagsPath     = "/api/tags"
)

// Client implements domain.Completer and domain.ModelLister for Ollama.
type Client struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

// New creates a new Ollama client that generates with model.
func New(cfg provider.ClientConfig, model string, logger *zap.Logger) *Client {
	return &Client{
		client: provider.NewRestyClient(cfg),
		model:  model,
		logger: logger,
	}
}

// Complete runs a non-streaming generation and returns the model output.
func (c *Client) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	var result generateResponse
	r, err := c.client.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:  c.model,
			Prompt: prompt,
			Stream: false,
			Options: generateOptions{
				Temperature: opts.Temperature,
				TopP:        opts.TopP,
			},
		}).
		SetResult(&result).
		Post(GeneratePath)
	if err != nil {
		return "", classify(err)
	}
	if r.IsError() {
		c.logger.Warn("ollama generate returned error status",
			zap.Int("status", r.StatusCode()),
			zap.String("body", r.String()),
		)

		return "", fmt.Errorf("%w: ollama returned status %d", domain.ErrUpstreamStatus, r.StatusCode())
	}

	return result.Response, nil
}

// ListModels returns the models installed on the server.
func (c *Client) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	var result tagsResponse
	r, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(TagsPath)
	if err != nil {
		return nil, classify(err)
	}
	if r.IsError() {
		return nil, fmt.Errorf("%w: ollama returned status %d", domain.ErrUpstreamStatus, r.StatusCode())
	}

	models := make([]domain.ModelInfo, 0, len(result.Models))
	for _, m := range result.Models {
		models = append(models, m.ToDomain())
	}

	return models, nil
}

// classify marks refused connections so callers can tell a stopped server
// apart from other transport failures.
func classify(err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %w", domain.ErrModelServerUnreachable, err)
	}

	return fmt.Errorf("calling ollama: %w", err)
}
