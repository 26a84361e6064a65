// Package domain contains the core entities and ports of the analyzer.
// This package has no external dependencies (only stdlib).
package domain

import "strings"

// VideoID is the opaque identifier of a video on the hosting platform.
type VideoID string

// String returns the identifier as a plain string.
func (id VideoID) String() string {
	return string(id)
}

// VideoMetadata describes a single video as reported by the metadata provider.
// Missing statistics are left at zero.
type VideoMetadata struct {
	Title        string
	Description  string
	ChannelName  string
	PublishedAt  string // RFC3339 as returned by the provider
	ViewCount    uint64
	LikeCount    uint64
	CommentCount uint64
	ThumbnailURL string
}

// Transcript is the concatenated caption text of a video.
type Transcript struct {
	Text string
}

// NewTranscript joins caption fragments with single spaces, in the order given.
// Returns nil when there is no text at all.
func NewTranscript(fragments []string) *Transcript {
	if len(fragments) == 0 {
		return nil
	}

	text := strings.Join(fragments, " ")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	return &Transcript{Text: text}
}

// IsEmpty reports whether the transcript carries no text.
func (t *Transcript) IsEmpty() bool {
	return t == nil || t.Text == ""
}
