package dto

import (
	"encoding/json"
	"time"

	"github.com/kenobicjj/youtubeanalystAPI/internal/app/service"
	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

// VideoResponse describes the analyzed video.
type VideoResponse struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Channel      string `json:"channel"`
	PublishedAt  string `json:"published_at"`
	ViewCount    uint64 `json:"view_count"`
	LikeCount    uint64 `json:"like_count"`
	CommentCount uint64 `json:"comment_count"`
	Thumbnail    string `json:"thumbnail"`
}

// FromDomainVideo converts domain.VideoMetadata to VideoResponse.
func FromDomainVideo(v *domain.VideoMetadata) *VideoResponse {
	if v == nil {
		return nil
	}

	return &VideoResponse{
		Title:        v.Title,
		Description:  v.Description,
		Channel:      v.ChannelName,
		PublishedAt:  v.PublishedAt,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		CommentCount: v.CommentCount,
		Thumbnail:    v.ThumbnailURL,
	}
}

// KeywordResponse is encoded as a two element array: [term, score].
type KeywordResponse struct {
	Term  string
	Score int
}

// MarshalJSON implements json.Marshaler.
func (k KeywordResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{k.Term, k.Score})
}

// AnalysisResponse holds transcript statistics.
type AnalysisResponse struct {
	WordCount         int               `json:"word_count"`
	SentenceCount     int               `json:"sentence_count"`
	AverageWordLength float64           `json:"average_word_length"`
	Keywords          []KeywordResponse `json:"keywords"`
}

// FromDomainAnalysis converts domain.AnalysisResult to AnalysisResponse.
func FromDomainAnalysis(a *domain.AnalysisResult) *AnalysisResponse {
	if a == nil {
		return nil
	}

	keywords := make([]KeywordResponse, len(a.Keywords))
	for i, k := range a.Keywords {
		keywords[i] = KeywordResponse{Term: k.Term, Score: k.Score}
	}

	return &AnalysisResponse{
		WordCount:         a.WordCount,
		SentenceCount:     a.SentenceCount,
		AverageWordLength: a.AverageWordLength,
		Keywords:          keywords,
	}
}

// AnalyzeResponse is the body of a 200 response from POST /analyze.
// A partial report carries null summary and analysis plus an error message.
type AnalyzeResponse struct {
	Video    *VideoResponse    `json:"video"`
	Summary  *string           `json:"summary"`
	Analysis *AnalysisResponse `json:"analysis"`
	Error    string            `json:"error,omitempty"`
	UsingLLM bool              `json:"using_llm,omitempty"`
}

// FromReport converts domain.AnalysisReport to AnalyzeResponse.
func FromReport(r *domain.AnalysisReport) AnalyzeResponse {
	return AnalyzeResponse{
		Video:    FromDomainVideo(r.Video),
		Summary:  r.Summary,
		Analysis: FromDomainAnalysis(r.Analysis),
		Error:    r.Error,
		UsingLLM: r.UsingLanguageModel,
	}
}

// Model check statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ModelResponse describes one installed model.
type ModelResponse struct {
	Name       string `json:"name"`
	ModifiedAt string `json:"modified_at,omitempty"`
	Size       int64  `json:"size,omitempty"`
	Digest     string `json:"digest,omitempty"`
}

// ModelListResponse is the body of a successful model check.
type ModelListResponse struct {
	Status string          `json:"status"`
	Models []ModelResponse `json:"models"`
}

// StatusMessageResponse is the body of a failed model check.
type StatusMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FromModelStatus converts service.ModelStatus to one of the two model check bodies.
func FromModelStatus(s service.ModelStatus) any {
	if !s.OK {
		return StatusMessageResponse{Status: StatusError, Message: s.Message}
	}

	models := make([]ModelResponse, len(s.Models))
	for i, m := range s.Models {
		models[i] = ModelResponse{
			Name:   m.Name,
			Size:   m.Size,
			Digest: m.Digest,
		}
		if !m.ModifiedAt.IsZero() {
			models[i].ModifiedAt = m.ModifiedAt.Format(time.RFC3339)
		}
	}

	return ModelListResponse{Status: StatusOK, Models: models}
}

// MessageResponse carries a single user-facing message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}
