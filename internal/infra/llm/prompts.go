package llm

import (
	"fmt"
	"strings"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

const summaryTemplate = `Please summarize the following YouTube video transcript.
Focus on the main points, key insights, and important details.
Keep your summary concise (about 3-5 paragraphs).

TRANSCRIPT:
%s

SUMMARY:
`

const keywordsTemplate = `Extract the 5-10 most important keywords or keyphrases from this YouTube video transcript.
Return them as a simple comma-separated list without explanations or additional text.

TRANSCRIPT:
%s

KEYWORDS:
`

func summaryPrompt(transcript string) string {
	return fmt.Sprintf(summaryTemplate, transcript)
}

func keywordsPrompt(transcript string) string {
	return fmt.Sprintf(keywordsTemplate, transcript)
}

// truncate cuts s to at most n characters. Sentence boundaries are ignored.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}

// parseKeywords splits comma-separated model output into at most limit
// keywords with score 1.
func parseKeywords(output string, limit int) []domain.Keyword {
	keywords := make([]domain.Keyword, 0, limit)
	for _, part := range strings.Split(output, ",") {
		term := strings.TrimSpace(part)
		if term == "" {
			continue
		}
		keywords = append(keywords, domain.Keyword{Term: term, Score: 1})
		if len(keywords) == limit {
			break
		}
	}

	return keywords
}
