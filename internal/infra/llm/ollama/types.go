package ollama

import (
	"time"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

// generateRequest is the body of a non-streaming /api/generate call.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"top_p,omitempty"`
}

// generateResponse is the subset of the /api/generate reply that is used.
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// tagsResponse is the reply of /api/tags.
type tagsResponse struct {
	Models []modelEntry `json:"models"`
}

type modelEntry struct {
	Name       string    `json:"name"`
	ModifiedAt time.Time `json:"modified_at"`
	Size       int64     `json:"size"`
	Digest     string    `json:"digest"`
}

// ToDomain converts a tags entry to domain.ModelInfo.
func (m *modelEntry) ToDomain() domain.ModelInfo {
	return domain.ModelInfo{
		Name:       m.Name,
		ModifiedAt: m.ModifiedAt,
		Size:       m.Size,
		Digest:     m.Digest,
	}
}
