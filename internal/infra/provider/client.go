// Package provider provides HTTP client utilities shared by the outbound
// clients (YouTube, captions, language model).
package provider

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/config"
)

// ClientConfig holds configuration for an outbound client.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	CB        CBConfig
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// BreakerConfig converts the config section into a CBConfig.
func BreakerConfig(cfg config.CBConfig) CBConfig {
	return CBConfig{
		MaxRequests:  cfg.MaxRequests,
		Interval:     cfg.Interval,
		Timeout:      cfg.Timeout,
		FailureRatio: cfg.FailureRatio,
	}
}

// NewRestyClient creates a Resty HTTP client. Requests are sent once; the
// only bound on a slow upstream is the client timeout.
func NewRestyClient(cfg ClientConfig) *resty.Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return client
}

// NewHTTPClient creates a plain *http.Client for SDKs that accept one.
// A nil transport uses http.DefaultTransport.
func NewHTTPClient(cfg ClientConfig, transport http.RoundTripper) *http.Client {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
}

// NewCircuitBreaker creates a new circuit breaker that logs its state changes.
func NewCircuitBreaker[T any](name string, cfg CBConfig, logger *zap.Logger) *gobreaker.CircuitBreaker[T] {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return gobreaker.NewCircuitBreaker[T](settings)
}
