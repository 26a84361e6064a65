package domain

// MaxKeywords caps every keyword list produced by the analyzer or the language model.
const MaxKeywords = 10

// Keyword is a ranked term. Score is an occurrence count for locally computed
// keywords and a constant 1 for keywords suggested by the language model.
type Keyword struct {
	Term  string
	Score int
}

// AnalysisResult holds descriptive statistics about a transcript.
type AnalysisResult struct {
	WordCount         int
	SentenceCount     int
	AverageWordLength float64 // rounded to 2 decimals
	Keywords          []Keyword
}

// EmptyAnalysis returns the result reported for a missing or empty transcript.
func EmptyAnalysis() AnalysisResult {
	return AnalysisResult{Keywords: []Keyword{}}
}

// WithKeywords returns a copy of the result with its keyword list replaced.
func (r AnalysisResult) WithKeywords(keywords []Keyword) AnalysisResult {
	r.Keywords = keywords

	return r
}

// Report messages surfaced to callers.
const (
	MessageInvalidURL            = "Invalid YouTube URL"
	MessageVideoUnavailable      = "Could not fetch video details"
	MessageTranscriptUnavailable = "Could not fetch transcript. The video might not have captions."
	MessageSummaryStatusError    = "Error generating summary. Please check the language model server."
	MessageSummaryConnectPrefix  = "Error connecting to the language model: "
	MessageNoSummary             = "No summary could be generated."

	MessageModelServerUnreachable = "Cannot connect to the language model server. Make sure it's running."
	MessageModelServerStatus      = "Language model server returned an error."
	MessageModelCheckPrefix       = "Error checking language model server: "
)

// AnalysisReport is the outcome of one analysis request.
//
// A fully successful report has Summary and Analysis set and UsingLanguageModel true.
// A partial failure (no transcript) has only Video and Error set.
type AnalysisReport struct {
	Video              *VideoMetadata
	Summary            *string
	Analysis           *AnalysisResult
	Error              string
	UsingLanguageModel bool
}

// IsPartial reports whether the pipeline stopped before summarization.
func (r *AnalysisReport) IsPartial() bool {
	return r.Error != ""
}
