package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
)

func newTestAnalyzer() *Analyzer {
	return New(zap.NewNop())
}

// TestAnalyze_Empty tests that empty and blank transcripts yield the zero result.
func TestAnalyze_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t \n"} {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			result := newTestAnalyzer().Analyze(text)

			assert.Equal(t, 0, result.WordCount)
			assert.Equal(t, 0, result.SentenceCount)
			assert.Equal(t, 0.0, result.AverageWordLength)
			require.NotNil(t, result.Keywords)
			assert.Empty(t, result.Keywords)
		})
	}
}

// TestAnalyze_Basic tests counts, average length and keywords on a small text.
func TestAnalyze_Basic(t *testing.T) {
	result := newTestAnalyzer().Analyze("Go is great. Go is fast.")

	// go is great . go is fast .
	assert.Equal(t, 8, result.WordCount)
	assert.Equal(t, 2, result.SentenceCount)
	// (2+2+5+2+2+4) / 6 = 2.8333
	assert.Equal(t, 2.83, result.AverageWordLength)
	assert.Equal(t, []domain.Keyword{
		{Term: "go", Score: 2},
		{Term: "great", Score: 1},
		{Term: "fast", Score: 1},
	}, result.Keywords)
}

// TestAnalyze_StopWordsOnly tests a sentence made only of stop words.
func TestAnalyze_StopWordsOnly(t *testing.T) {
	result := newTestAnalyzer().Analyze("the a an is")

	assert.Equal(t, 4, result.WordCount)
	assert.Greater(t, result.SentenceCount, 0)
	assert.Empty(t, result.Keywords)
	// Stop words still count towards the average length.
	assert.Equal(t, 2.0, result.AverageWordLength)
}

// TestAnalyze_PunctuationCountsAsWords tests that punctuation tokens are counted
// but excluded from keywords and from the average length.
func TestAnalyze_PunctuationCountsAsWords(t *testing.T) {
	result := newTestAnalyzer().Analyze("hello, world!")

	assert.Equal(t, 4, result.WordCount)
	assert.Equal(t, 5.0, result.AverageWordLength)
	assert.Equal(t, []domain.Keyword{
		{Term: "hello", Score: 1},
		{Term: "world", Score: 1},
	}, result.Keywords)
}

// TestAnalyze_TopTenByFrequency tests ranking and the cap of 10 keywords.
func TestAnalyze_TopTenByFrequency(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliet",
		"kilo", "lima", "mike", "november", "oscar",
	}

	// words[i] appears i+1 times, least frequent first.
	var parts []string
	for i, w := range words {
		for n := 0; n <= i; n++ {
			parts = append(parts, w)
		}
	}

	result := newTestAnalyzer().Analyze(strings.Join(parts, " "))

	require.Len(t, result.Keywords, domain.MaxKeywords)
	assert.Equal(t, domain.Keyword{Term: "oscar", Score: 15}, result.Keywords[0])
	assert.Equal(t, domain.Keyword{Term: "foxtrot", Score: 6}, result.Keywords[9])
	for i := 1; i < len(result.Keywords); i++ {
		assert.Greater(t, result.Keywords[i-1].Score, result.Keywords[i].Score)
	}
}

// TestAnalyze_StableTies tests that equal counts keep first-seen order.
func TestAnalyze_StableTies(t *testing.T) {
	result := newTestAnalyzer().Analyze("zebra apple zebra apple mango")

	assert.Equal(t, []domain.Keyword{
		{Term: "zebra", Score: 2},
		{Term: "apple", Score: 2},
		{Term: "mango", Score: 1},
	}, result.Keywords)
}

// TestAnalyze_CaseFolding tests that keywords are keyed by the lower-cased token.
func TestAnalyze_CaseFolding(t *testing.T) {
	result := newTestAnalyzer().Analyze("Data data DATA")

	assert.Equal(t, 3, result.WordCount)
	assert.Equal(t, []domain.Keyword{{Term: "data", Score: 3}}, result.Keywords)
}

// TestAnalyze_UnicodeLengths tests that lengths are measured in characters.
func TestAnalyze_UnicodeLengths(t *testing.T) {
	result := newTestAnalyzer().Analyze("café naïve café")

	// (4 + 5 + 4) / 3 = 4.333
	assert.Equal(t, 4.33, result.AverageWordLength)
	assert.Equal(t, []domain.Keyword{
		{Term: "café", Score: 2},
		{Term: "naïve", Score: 1},
	}, result.Keywords)
}

// TestAnalyze_Deterministic tests that repeated calls give the same result.
func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer()
	text := "Kubernetes schedules pods. Pods run containers. Containers share nodes."

	first := a.Analyze(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Analyze(text))
	}
}

func TestIsAlphanumeric(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"go", true},
		{"42", true},
		{"go2", true},
		{"café", true},
		{"", false},
		{".", false},
		{"n't", false},
		{"e-mail", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, isAlphanumeric(tt.word))
		})
	}
}

func TestAverageLength(t *testing.T) {
	assert.Equal(t, 0.0, averageLength(0, 0))
	assert.Equal(t, 0.0, averageLength(10, 0))
	assert.Equal(t, 3.5, averageLength(7, 2))
	assert.Equal(t, 3.33, averageLength(10, 3))
	assert.Equal(t, 6.67, averageLength(20, 3))
}

func TestFrequencyTable_Top(t *testing.T) {
	f := newFrequencyTable()
	for _, w := range []string{"b", "a", "b", "c", "a", "b"} {
		f.add(w)
	}

	assert.Equal(t, []domain.Keyword{
		{Term: "b", Score: 3},
		{Term: "a", Score: 2},
	}, f.top(2))
	assert.Len(t, f.top(10), 3)
}
