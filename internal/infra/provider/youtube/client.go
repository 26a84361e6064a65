// Package youtube implements the video metadata client on top of the
// YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider"
)

// videoParts are the resource parts requested for a video.
var videoParts = []string{"snippet", "statistics"}

// Client implements domain.MetadataProvider.
type Client struct {
	service *ytapi.Service
	cb      *gobreaker.CircuitBreaker[*ytapi.VideoListResponse]
	logger  *zap.Logger
}

// New creates a metadata client authenticated with apiKey.
// cfg.BaseURL overrides the public endpoint when set. A nil base transport
// uses http.DefaultTransport.
func New(ctx context.Context, cfg provider.ClientConfig, apiKey string, base http.RoundTripper, logger *zap.Logger) (*Client, error) {
	if base == nil {
		base = http.DefaultTransport
	}
	if apiKey == "" {
		logger.Warn("youtube api key is not configured, metadata lookups will fail")
	}

	httpClient := provider.NewHTTPClient(cfg, &transport.APIKey{Key: apiKey, Transport: base})

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}

	return &Client{
		service: service,
		cb:      provider.NewCircuitBreaker[*ytapi.VideoListResponse]("youtube", cfg.CB, logger),
		logger:  logger,
	}, nil
}

// FetchMetadata looks up a single video by id.
// An unknown id yields domain.ErrVideoUnavailable.
func (c *Client) FetchMetadata(ctx context.Context, id domain.VideoID) (*domain.VideoMetadata, error) {
	resp, err := c.cb.Execute(func() (*ytapi.VideoListResponse, error) {
		return c.service.Videos.
			List(videoParts).
			Id(id.String()).
			Context(ctx).
			Do()
	})
	if err != nil {
		c.logger.Warn("youtube metadata fetch failed",
			zap.String("video_id", id.String()),
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return nil, fmt.Errorf("fetching metadata for %s: %w", id, err)
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", id, domain.ErrVideoUnavailable)
	}

	return toDomain(resp.Items[0]), nil
}

// toDomain maps an API video resource. Missing statistics stay 0 and a
// missing high-resolution thumbnail stays empty.
func toDomain(v *ytapi.Video) *domain.VideoMetadata {
	md := &domain.VideoMetadata{}

	if s := v.Snippet; s != nil {
		md.Title = s.Title
		md.Description = s.Description
		md.ChannelName = s.ChannelTitle
		md.PublishedAt = s.PublishedAt
		if s.Thumbnails != nil && s.Thumbnails.High != nil {
			md.ThumbnailURL = s.Thumbnails.High.Url
		}
	}

	if st := v.Statistics; st != nil {
		md.ViewCount = st.ViewCount
		md.LikeCount = st.LikeCount
		md.CommentCount = st.CommentCount
	}

	return md
}
