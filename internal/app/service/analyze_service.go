// Package service provides application use cases.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

// AnalyzeService runs the video analysis pipeline: URL parsing, metadata,
// transcript, summary, local analysis and keyword refinement. Steps run
// strictly in sequence and nothing is retried.
type AnalyzeService struct {
	metadata    domain.MetadataProvider
	transcripts domain.TranscriptProvider
	summarizer  domain.Summarizer
	analyzer    domain.TextAnalyzer
	keywords    domain.KeywordExtractor
	logger      *zap.Logger
}

// NewAnalyzeService creates a new AnalyzeService.
func NewAnalyzeService(
	metadata domain.MetadataProvider,
	transcripts domain.TranscriptProvider,
	summarizer domain.Summarizer,
	analyzer domain.TextAnalyzer,
	keywords domain.KeywordExtractor,
	logger *zap.Logger,
) *AnalyzeService {
	return &AnalyzeService{
		metadata:    metadata,
		transcripts: transcripts,
		summarizer:  summarizer,
		analyzer:    analyzer,
		keywords:    keywords,
		logger:      logger,
	}
}

// Analyze builds the report for the video behind rawURL.
//
// It fails with domain.ErrInvalidURL when no video id can be extracted and
// with domain.ErrVideoUnavailable when metadata cannot be fetched. A missing
// transcript is not an error: the report carries the metadata and an
// explanation instead. Language model failures only degrade the summary or
// leave the locally computed keywords in place.
func (s *AnalyzeService) Analyze(ctx context.Context, rawURL string) (*domain.AnalysisReport, error) {
	start := time.Now()

	id, ok := domain.ExtractVideoID(rawURL)
	if !ok {
		s.logger.Warn("no video id in url", zap.String("url", rawURL))

		return nil, domain.ErrInvalidURL
	}

	log := s.logger.With(zap.String("video_id", id.String()))

	video, err := s.metadata.FetchMetadata(ctx, id)
	if err != nil {
		log.Warn("metadata unavailable", zap.Error(err))

		return nil, fmt.Errorf("%w: %w", domain.ErrVideoUnavailable, err)
	}
	if video == nil {
		log.Warn("metadata provider returned no video")

		return nil, domain.ErrVideoUnavailable
	}

	transcript, err := s.transcripts.FetchTranscript(ctx, id)
	if err != nil || transcript.IsEmpty() {
		log.Warn("transcript unavailable", zap.Error(err))

		return &domain.AnalysisReport{
			Video: video,
			Error: domain.MessageTranscriptUnavailable,
		}, nil
	}

	summary := s.summarize(ctx, log, transcript.Text)

	analysis := s.analyzer.Analyze(transcript.Text)
	if refined := s.refineKeywords(ctx, log, transcript.Text); len(refined) > 0 {
		analysis = analysis.WithKeywords(refined)
	}

	log.Info("analysis completed",
		zap.Int("word_count", analysis.WordCount),
		zap.Int("keyword_count", len(analysis.Keywords)),
		zap.Duration("duration", time.Since(start)),
	)

	return &domain.AnalysisReport{
		Video:              video,
		Summary:            &summary,
		Analysis:           &analysis,
		UsingLanguageModel: true,
	}, nil
}

// summarize returns the model summary or a human-readable placeholder.
func (s *AnalyzeService) summarize(ctx context.Context, log *zap.Logger, text string) string {
	summary, err := s.summarizer.Summarize(ctx, text)
	if err == nil {
		return summary
	}

	log.Error("summarization failed", zap.Error(err))

	if errors.Is(err, domain.ErrUpstreamStatus) {
		return domain.MessageSummaryStatusError
	}

	return domain.MessageSummaryConnectPrefix + err.Error()
}

// refineKeywords returns the model's keywords, or nil when it has none.
func (s *AnalyzeService) refineKeywords(ctx context.Context, log *zap.Logger, text string) []domain.Keyword {
	keywords, err := s.keywords.ExtractKeywords(ctx, text)
	if err != nil {
		log.Warn("keyword extraction failed, keeping local keywords", zap.Error(err))

		return nil
	}

	return keywords
}
