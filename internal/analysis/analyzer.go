// Package analysis computes descriptive statistics and a frequency-based
// keyword ranking over a transcript.
package analysis

import (
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

// Analyzer implements domain.TextAnalyzer using English tokenization rules.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	logger *zap.Logger
}

// New creates a new Analyzer.
func New(logger *zap.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze tokenizes the transcript and returns word/sentence counts, the
// average alphanumeric word length and the top keywords by frequency.
//
// Word tokens are taken from the lower-cased text and include punctuation.
// Keywords only consider alphanumeric tokens that are not English stop words.
// An empty or blank transcript yields the zero result.
func (a *Analyzer) Analyze(text string) domain.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return domain.EmptyAnalysis()
	}

	words, err := tokenize(strings.ToLower(text))
	if err != nil {
		a.logger.Error("word tokenization failed", zap.Error(err))

		return domain.EmptyAnalysis()
	}

	sentences, err := countSentences(text)
	if err != nil {
		a.logger.Error("sentence segmentation failed", zap.Error(err))

		return domain.EmptyAnalysis()
	}

	totalLength := 0
	alnumCount := 0
	freq := newFrequencyTable()

	for _, w := range words {
		if !isAlphanumeric(w) {
			continue
		}
		totalLength += utf8.RuneCountInString(w)
		alnumCount++

		if !englishStopWords.contains(w) {
			freq.add(w)
		}
	}

	return domain.AnalysisResult{
		WordCount:         len(words),
		SentenceCount:     sentences,
		AverageWordLength: averageLength(totalLength, alnumCount),
		Keywords:          freq.top(domain.MaxKeywords),
	}
}

// tokenize splits text into word and punctuation tokens.
func tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}

	return words, nil
}

// countSentences segments text into sentences using punkt-style boundary rules.
func countSentences(text string) (int, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return 0, err
	}

	return len(doc.Sentences()), nil
}

// isAlphanumeric reports whether every rune of w is a letter or digit.
func isAlphanumeric(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// averageLength returns total/count rounded to 2 decimals, or 0 when count is 0.
func averageLength(total, count int) float64 {
	if count == 0 {
		return 0
	}

	return math.Round(float64(total)/float64(count)*100) / 100
}

// frequencyTable counts terms and remembers the order they were first seen.
type frequencyTable struct {
	counts map[string]int
	order  []string
}

func newFrequencyTable() *frequencyTable {
	return &frequencyTable{counts: make(map[string]int)}
}

func (f *frequencyTable) add(term string) {
	if _, seen := f.counts[term]; !seen {
		f.order = append(f.order, term)
	}
	f.counts[term]++
}

// top returns at most n terms by descending count; ties keep first-seen order.
func (f *frequencyTable) top(n int) []domain.Keyword {
	keywords := make([]domain.Keyword, 0, len(f.order))
	for _, term := range f.order {
		keywords = append(keywords, domain.Keyword{Term: term, Score: f.counts[term]})
	}

	slices.SortStableFunc(keywords, func(a, b domain.Keyword) int {
		return b.Score - a.Score
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}

	return keywords
}
