package youtube

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider"
)

const videosEndpoint = `=~^https://youtube\.example\.com/youtube/v3/videos`

func newTestClient(t *testing.T) (*Client, *httpmock.MockTransport) {
	t.Helper()

	mock := httpmock.NewMockTransport()
	cfg := provider.ClientConfig{
		BaseURL: "https://youtube.example.com/",
		Timeout: 5 * time.Second,
		CB: provider.CBConfig{
			MaxRequests:  1,
			Interval:     60 * time.Second,
			Timeout:      60 * time.Second,
			FailureRatio: 0.6,
		},
	}

	client, err := New(context.Background(), cfg, "test-key", mock, zap.NewNop())
	require.NoError(t, err)

	return client, mock
}

const videoJSON = `{
  "items": [{
    "id": "dQw4w9WgXcQ",
    "snippet": {
      "title": "Test Video",
      "description": "A description",
      "channelTitle": "Test Channel",
      "publishedAt": "2024-01-15T10:00:00Z",
      "thumbnails": {"high": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}}
    },
    "statistics": {"viewCount": "1500", "likeCount": "120", "commentCount": "8"}
  }]
}`

// TestFetchMetadata_Success tests mapping of snippet and statistics.
func TestFetchMetadata_Success(t *testing.T) {
	client, mock := newTestClient(t)

	var gotKey, gotID string
	mock.RegisterResponder("GET", videosEndpoint,
		func(req *http.Request) (*http.Response, error) {
			gotKey = req.URL.Query().Get("key")
			gotID = req.URL.Query().Get("id")

			return httpmock.NewStringResponse(200, videoJSON), nil
		})

	md, err := client.FetchMetadata(context.Background(), "dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "dQw4w9WgXcQ", gotID)
	assert.Equal(t, &domain.VideoMetadata{
		Title:        "Test Video",
		Description:  "A description",
		ChannelName:  "Test Channel",
		PublishedAt:  "2024-01-15T10:00:00Z",
		ViewCount:    1500,
		LikeCount:    120,
		CommentCount: 8,
		ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
	}, md)
}

// TestFetchMetadata_MissingOptionalFields tests that absent statistics and
// thumbnails default to zero values.
func TestFetchMetadata_MissingOptionalFields(t *testing.T) {
	client, mock := newTestClient(t)

	mock.RegisterResponder("GET", videosEndpoint,
		httpmock.NewStringResponder(200, `{"items":[{"id":"x","snippet":{"title":"Only title"}}]}`))

	md, err := client.FetchMetadata(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, "Only title", md.Title)
	assert.Zero(t, md.ViewCount)
	assert.Zero(t, md.LikeCount)
	assert.Zero(t, md.CommentCount)
	assert.Empty(t, md.ThumbnailURL)
}

// TestFetchMetadata_NoItems tests that an unknown id is reported as unavailable.
func TestFetchMetadata_NoItems(t *testing.T) {
	client, mock := newTestClient(t)

	mock.RegisterResponder("GET", videosEndpoint,
		httpmock.NewStringResponder(200, `{"items":[]}`))

	md, err := client.FetchMetadata(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, md)
	assert.ErrorIs(t, err, domain.ErrVideoUnavailable)
}

// TestFetchMetadata_HTTPError tests API error handling.
func TestFetchMetadata_HTTPError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"400 Bad Request", 400},
		{"403 Forbidden", 403},
		{"500 Internal Server Error", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := newTestClient(t)
			mock.RegisterResponder("GET", videosEndpoint,
				httpmock.NewStringResponder(tt.statusCode, `{"error":{"code":403,"message":"denied"}}`))

			md, err := client.FetchMetadata(context.Background(), "abc")

			require.Error(t, err)
			assert.Nil(t, md)
			assert.Contains(t, err.Error(), "fetching metadata for abc")
		})
	}
}

// TestFetchMetadata_NetworkError tests transport failures.
func TestFetchMetadata_NetworkError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.RegisterResponder("GET", videosEndpoint,
		httpmock.NewErrorResponder(errors.New("connection refused")))

	md, err := client.FetchMetadata(context.Background(), "abc")

	require.Error(t, err)
	assert.Nil(t, md)
}

// TestFetchMetadata_CircuitBreakerOpens tests that repeated failures trip the breaker.
func TestFetchMetadata_CircuitBreakerOpens(t *testing.T) {
	client, mock := newTestClient(t)

	mock.RegisterResponder("GET", videosEndpoint,
		httpmock.NewStringResponder(500, `{"error":{"code":500,"message":"boom"}}`))

	for i := 0; i < 3; i++ {
		_, err := client.FetchMetadata(context.Background(), "abc")
		require.Error(t, err)
	}

	calls := mock.GetTotalCallCount()

	_, err := client.FetchMetadata(context.Background(), "abc")

	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, calls, mock.GetTotalCallCount())
}
