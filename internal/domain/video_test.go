package domain

import "testing"

func TestNewTranscript(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		wantNil   bool
		wantText  string
	}{
		{"nil fragments", nil, true, ""},
		{"empty fragments", []string{}, true, ""},
		{"only blanks", []string{"", " "}, true, ""},
		{"single fragment", []string{"hello"}, false, "hello"},
		{"keeps order", []string{"one", "two", "three"}, false, "one two three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTranscript(tt.fragments)
			if tt.wantNil {
				if got != nil {
					t.Errorf("NewTranscript() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("NewTranscript() = nil, want transcript")
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

func TestTranscript_IsEmpty(t *testing.T) {
	var missing *Transcript
	if !missing.IsEmpty() {
		t.Error("expected nil transcript to be empty")
	}
	if !(&Transcript{}).IsEmpty() {
		t.Error("expected zero transcript to be empty")
	}
	if (&Transcript{Text: "captions"}).IsEmpty() {
		t.Error("expected transcript with text to be non-empty")
	}
}

func TestAnalysisResult_WithKeywords(t *testing.T) {
	original := AnalysisResult{
		WordCount: 5,
		Keywords:  []Keyword{{Term: "local", Score: 3}},
	}

	replaced := original.WithKeywords([]Keyword{{Term: "model", Score: 1}})

	if replaced.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", replaced.WordCount)
	}
	if len(replaced.Keywords) != 1 || replaced.Keywords[0].Term != "model" {
		t.Errorf("Keywords = %+v, want [model]", replaced.Keywords)
	}
	if original.Keywords[0].Term != "local" {
		t.Error("expected original result to be unchanged")
	}
}

func TestEmptyAnalysis(t *testing.T) {
	got := EmptyAnalysis()
	if got.WordCount != 0 || got.SentenceCount != 0 || got.AverageWordLength != 0 {
		t.Errorf("EmptyAnalysis() = %+v, want zero counts", got)
	}
	if got.Keywords == nil || len(got.Keywords) != 0 {
		t.Errorf("Keywords = %#v, want empty non-nil slice", got.Keywords)
	}
}

func TestAnalysisReport_IsPartial(t *testing.T) {
	if (&AnalysisReport{UsingLanguageModel: true}).IsPartial() {
		t.Error("expected full report not to be partial")
	}
	if !(&AnalysisReport{Error: MessageTranscriptUnavailable}).IsPartial() {
		t.Error("expected report with error to be partial")
	}
}
