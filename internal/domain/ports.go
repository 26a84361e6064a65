package domain

import (
	"context"
	"time"
)

// MetadataProvider looks up video details.
// Implementations: internal/infra/provider/youtube/
type MetadataProvider interface {
	// FetchMetadata returns the metadata of a video.
	// An unknown video is reported as ErrVideoUnavailable.
	FetchMetadata(ctx context.Context, id VideoID) (*VideoMetadata, error)
}

// TranscriptProvider retrieves caption text.
// Implementations: internal/infra/provider/transcript/
type TranscriptProvider interface {
	// FetchTranscript returns the space-joined captions of a video.
	// A video without captions is reported as ErrTranscriptUnavailable.
	FetchTranscript(ctx context.Context, id VideoID) (*Transcript, error)
}

// CompletionOptions holds sampling parameters for a text completion.
// A zero TopP leaves the backend default in place.
type CompletionOptions struct {
	Temperature float32
	TopP        float32
}

// Completer sends a prompt to a language model and returns its text output.
// Implementations: internal/infra/llm/ollama/, internal/infra/llm/openai/
type Completer interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// Summarizer turns a transcript into a natural-language summary.
// Implementations: internal/infra/llm/
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// KeywordExtractor asks a language model for the key terms of a transcript.
// Implementations: internal/infra/llm/
type KeywordExtractor interface {
	ExtractKeywords(ctx context.Context, transcript string) ([]Keyword, error)
}

// TextAnalyzer computes local statistics over a transcript.
// Implementations: internal/analysis/
type TextAnalyzer interface {
	Analyze(text string) AnalysisResult
}

// ModelInfo describes a model installed on the language model server.
type ModelInfo struct {
	Name       string    `json:"name"`
	ModifiedAt time.Time `json:"modified_at,omitempty"`
	Size       int64     `json:"size,omitempty"`
	Digest     string    `json:"digest,omitempty"`
}

// ModelLister enumerates the models available on the language model server.
// Implementations: internal/infra/llm/ollama/, internal/infra/llm/openai/
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// CredentialStore persists the video platform API key.
// Implementations: internal/infra/credentials/
type CredentialStore interface {
	SaveAPIKey(ctx context.Context, apiKey string) error
}
