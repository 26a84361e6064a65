// Package openai implements the language model backend for servers that
// speak the OpenAI chat completions API, including Ollama's /v1 endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider"
)

// Client implements domain.Completer and domain.ModelLister.
type Client struct {
	client *goopenai.Client
	model  string
	logger *zap.Logger
}

// New creates a chat completions client. A nil transport uses
// http.DefaultTransport.
func New(cfg provider.ClientConfig, apiKey, model string, transport http.RoundTripper, logger *zap.Logger) *Client {
	oc := goopenai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = provider.NewHTTPClient(cfg, transport)

	return &Client{
		client: goopenai.NewClientWithConfig(oc),
		model:  model,
		logger: logger,
	}
}

// Complete sends the prompt as a single user message.
func (c *Client) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
	})
	if err != nil {
		return "", c.classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// ListModels returns the models served by the endpoint.
func (c *Client) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, c.classify(err)
	}

	models := make([]domain.ModelInfo, 0, len(list.Models))
	for _, m := range list.Models {
		info := domain.ModelInfo{Name: m.ID}
		if m.CreatedAt > 0 {
			info.ModifiedAt = time.Unix(m.CreatedAt, 0).UTC()
		}
		models = append(models, info)
	}

	return models, nil
}

// classify maps SDK errors onto the domain sentinels.
func (c *Client) classify(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		c.logger.Warn("language model returned error status",
			zap.Int("status", apiErr.HTTPStatusCode),
			zap.String("message", apiErr.Message),
		)

		return fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamStatus, apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: status %d", domain.ErrUpstreamStatus, reqErr.HTTPStatusCode)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %w", domain.ErrModelServerUnreachable, err)
	}

	return fmt.Errorf("calling language model: %w", err)
}
