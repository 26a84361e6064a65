package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/config"
	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/llm"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/llm/ollama"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/llm/openai"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider/transcript"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider/youtube"
)

// Supported language model backends.
const (
	BackendOllama = "ollama"
	BackendOpenAI = "openai"
)

// LLMBackend is a language model server that can generate text and list
// its models.
type LLMBackend interface {
	domain.Completer
	domain.ModelLister
}

// Clients holds every outbound client used by the analysis pipeline.
type Clients struct {
	Metadata   domain.MetadataProvider
	Transcript domain.TranscriptProvider
	Backend    LLMBackend
	Summarizer domain.Summarizer
	Keywords   domain.KeywordExtractor
}

// NewClients creates all configured outbound clients.
// This is a factory function that centralizes client initialization
// while maintaining dependency injection principles.
func NewClients(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Clients, error) {
	metadata, err := youtube.New(ctx,
		provider.ClientConfig{
			BaseURL: cfg.YouTube.BaseURL,
			Timeout: cfg.YouTube.Timeout,
			CB:      provider.BreakerConfig(cfg.YouTube.CB),
		},
		cfg.YouTube.APIKey,
		nil,
		logger.Named("youtube"),
	)
	if err != nil {
		return nil, err
	}

	captions := transcript.New(
		provider.ClientConfig{
			BaseURL:   cfg.Transcript.BaseURL,
			Timeout:   cfg.Transcript.Timeout,
			UserAgent: cfg.Transcript.UserAgent,
			CB:        provider.BreakerConfig(cfg.Transcript.CB),
		},
		cfg.Transcript.Language,
		logger.Named("transcript"),
	)

	backend, err := NewLLMBackend(cfg.LLM, logger.Named("llm"))
	if err != nil {
		return nil, err
	}

	gate := llm.NewGate(backend, llm.GateConfig{
		RateLimit: cfg.LLM.RateLimit,
		RateBurst: cfg.LLM.RateBurst,
		CB:        provider.BreakerConfig(cfg.LLM.CB),
	}, logger.Named("llm"))

	summarizer := llm.NewSummarizer(gate, llm.TaskConfig{
		MaxChars: cfg.LLM.Summary.MaxChars,
		Timeout:  cfg.LLM.Summary.Timeout,
		Options: domain.CompletionOptions{
			Temperature: cfg.LLM.Temperature,
			TopP:        cfg.LLM.TopP,
		},
	}, logger.Named("summarizer"))

	keywords := llm.NewKeywordExtractor(gate, llm.TaskConfig{
		MaxChars: cfg.LLM.Keywords.MaxChars,
		Timeout:  cfg.LLM.Keywords.Timeout,
		Options: domain.CompletionOptions{
			Temperature: cfg.LLM.Temperature,
		},
	}, logger.Named("keywords"))

	return &Clients{
		Metadata:   metadata,
		Transcript: captions,
		Backend:    backend,
		Summarizer: summarizer,
		Keywords:   keywords,
	}, nil
}

// NewLLMBackend creates the language model backend named by cfg.Backend.
func NewLLMBackend(cfg config.LLMConfig, logger *zap.Logger) (LLMBackend, error) {
	clientCfg := provider.ClientConfig{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}

	switch cfg.Backend {
	case BackendOllama, "":
		return ollama.New(clientCfg, cfg.Model, logger), nil
	case BackendOpenAI:
		return openai.New(clientCfg, cfg.APIKey, cfg.Model, nil, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}
