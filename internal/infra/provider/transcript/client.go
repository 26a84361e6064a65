// Package transcript implements the caption client. It reads the caption
// track list from a video's watch page and downloads the selected track as
// timedtext XML.
package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider"
)

// WatchPath is the path of the video watch page.
const WatchPath = "/watch"

const playerResponseMarker = "ytInitialPlayerResponse = "

// Client implements domain.TranscriptProvider.
type Client struct {
	client   *resty.Client
	cb       *gobreaker.CircuitBreaker[*resty.Response]
	language string
	logger   *zap.Logger
}

// New creates a caption client. language is the preferred caption language.
func New(cfg provider.ClientConfig, language string, logger *zap.Logger) *Client {
	return &Client{
		client:   provider.NewRestyClient(cfg),
		cb:       provider.NewCircuitBreaker[*resty.Response]("transcript", cfg.CB, logger),
		language: language,
		logger:   logger,
	}
}

// FetchTranscript downloads the captions of a video and joins the fragments
// with single spaces. Videos without usable captions yield
// domain.ErrTranscriptUnavailable.
func (c *Client) FetchTranscript(ctx context.Context, id domain.VideoID) (*domain.Transcript, error) {
	page, err := c.get(ctx, WatchPath, map[string]string{"v": id.String(), "hl": c.language})
	if err != nil {
		return nil, c.fail(id, "fetching watch page", err)
	}

	player, err := parsePlayerResponse(page.String())
	if err != nil {
		return nil, c.fail(id, "parsing player response", err)
	}

	if s := player.PlayabilityStatus.Status; s != "" && s != "OK" {
		return nil, c.fail(id, "video not playable",
			fmt.Errorf("%s %s: %w", s, player.PlayabilityStatus.Reason, domain.ErrTranscriptUnavailable))
	}

	track, ok := pickTrack(player.tracks(), c.language)
	if !ok {
		return nil, c.fail(id, "selecting caption track", domain.ErrTranscriptUnavailable)
	}

	resp, err := c.get(ctx, track.BaseURL, nil)
	if err != nil {
		return nil, c.fail(id, "fetching captions", err)
	}

	var tt timedText
	if err := xml.Unmarshal(resp.Body(), &tt); err != nil {
		return nil, c.fail(id, "parsing captions XML", err)
	}

	transcript := domain.NewTranscript(tt.fragments())
	if transcript == nil {
		return nil, c.fail(id, "empty captions", domain.ErrTranscriptUnavailable)
	}

	c.logger.Info("transcript fetch completed",
		zap.String("video_id", id.String()),
		zap.String("language", track.LanguageCode),
		zap.Int("fragments", len(tt.Lines)),
	)

	return transcript, nil
}

func (c *Client) get(ctx context.Context, url string, query map[string]string) (*resty.Response, error) {
	return c.cb.Execute(func() (*resty.Response, error) {
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(query).
			Get(url)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("%w: %d", domain.ErrUpstreamStatus, r.StatusCode())
		}

		return r, nil
	})
}

func (c *Client) fail(id domain.VideoID, step string, err error) error {
	c.logger.Warn("transcript fetch failed",
		zap.String("video_id", id.String()),
		zap.String("step", step),
		zap.Error(err),
		zap.String("state", c.cb.State().String()),
	)

	return fmt.Errorf("%s for %s: %w", step, id, err)
}

// parsePlayerResponse decodes the JSON object assigned to
// ytInitialPlayerResponse in the watch page.
func parsePlayerResponse(page string) (*playerResponse, error) {
	idx := strings.Index(page, playerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("player response not found: %w", domain.ErrTranscriptUnavailable)
	}

	var player playerResponse
	dec := json.NewDecoder(strings.NewReader(page[idx+len(playerResponseMarker):]))
	if err := dec.Decode(&player); err != nil {
		return nil, fmt.Errorf("decoding player response: %w", err)
	}

	return &player, nil
}

// pickTrack prefers a manual track in lang, then an auto-generated track in
// lang, then any English track, then the first usable track.
func pickTrack(tracks []captionTrack, lang string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if t.BaseURL != "" && !t.needsPoToken() {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}

	for _, t := range usable {
		if t.LanguageCode == lang && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range usable {
		if t.LanguageCode == lang {
			return t, true
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}

	return usable[0], true
}
