package analyzers

import (
	"strings"
	"testing"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/extractor"
)

func textExtraction(text string) *extractor.ExtractionResult {
	return &extractor.ExtractionResult{
		Title: "Test Page",
		Content: models.ExtractedContent{
			Text:      text,
			WordCount: len(strings.Fields(text)),
		},
	}
}

func factorByName(t *testing.T, detail models.ScoreDetail, name string) models.ScoreFactor {
	t.Helper()
	for _, f := range detail.Factors {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("factor %q not found in %+v", name, detail.Factors)
	return models.ScoreFactor{}
}

func TestAnalyzeReadability_EmptyContent(t *testing.T) {
	detail := AnalyzeReadability(textExtraction(""))

	// Empty content still produces all five factors and a defined
	// score: 0 length + 10 sentence + 5 paragraph + 20 complexity +
	// 20 voice.
	if len(detail.Factors) != 5 {
		t.Fatalf("got %d factors, want 5", len(detail.Factors))
	}
	if detail.Score != 55 {
		t.Errorf("Score = %d, want 55", detail.Score)
	}
	if detail.Label != "Needs Work" {
		t.Errorf("Label = %q, want Needs Work", detail.Label)
	}
}

func TestAnalyzeReadability_IdealContent(t *testing.T) {
	// 1500+ words, 14-word sentences, many paragraphs, short words,
	// no passive voice: every factor lands in its top bucket.
	sentence := "The cat sat on the mat and then ran to the door with joy."
	paragraph := strings.Repeat(sentence+" ", 8)
	text := strings.TrimSpace(strings.Repeat(paragraph+"\n\n", 14))

	extraction := textExtraction(text)
	if extraction.Content.WordCount < 1500 {
		t.Fatalf("fixture too short: %d words", extraction.Content.WordCount)
	}

	detail := AnalyzeReadability(extraction)
	if detail.Score != 100 {
		t.Errorf("Score = %d, want 100; factors %+v", detail.Score, detail.Factors)
	}
	if detail.Label != "Excellent" {
		t.Errorf("Label = %q, want Excellent", detail.Label)
	}
}

func TestAnalyzeReadability_SentenceLengthBuckets(t *testing.T) {
	// The sentence-length curve is not monotonic: very short
	// sentences outscore very long ones.
	short := strings.TrimSpace(strings.Repeat("Go is fun. Cats run fast. ", 60))
	longWords := strings.Repeat("word ", 30)
	long := strings.TrimSpace(strings.Repeat(longWords+". ", 10))

	shortDetail := AnalyzeReadability(textExtraction(short))
	longDetail := AnalyzeReadability(textExtraction(long))

	shortFactor := factorByName(t, shortDetail, "Sentence Length")
	if !strings.Contains(shortFactor.Suggestion, "very short") {
		t.Errorf("short-sentence suggestion = %q", shortFactor.Suggestion)
	}
	longFactor := factorByName(t, longDetail, "Sentence Length")
	if !strings.Contains(longFactor.Suggestion, "too long") {
		t.Errorf("long-sentence suggestion = %q", longFactor.Suggestion)
	}
}

func TestAnalyzeReadability_PassiveVoice(t *testing.T) {
	// Passive indicators appear in nearly every sentence, so the
	// ratio blows past 0.2 and the factor turns negative.
	text := strings.TrimSpace(strings.Repeat("The report was written and has been reviewed by the team. ", 20))
	detail := AnalyzeReadability(textExtraction(text))

	factor := factorByName(t, detail, "Active Voice")
	if factor.Impact != models.ImpactNegative {
		t.Errorf("Active Voice impact = %q, want negative", factor.Impact)
	}
}

func TestAnalyzeReadability_ScoreRange(t *testing.T) {
	inputs := []string{
		"",
		"One short line.",
		strings.Repeat("Complicated multisyllabic terminology overwhelms comprehension significantly. ", 100),
	}
	for _, text := range inputs {
		detail := AnalyzeReadability(textExtraction(text))
		if detail.Score < 0 || detail.Score > 100 {
			t.Errorf("Score = %d out of range for input %.40q", detail.Score, text)
		}
		if detail.Percentage != detail.Score {
			t.Errorf("Percentage = %d, want %d (max score is 100)", detail.Percentage, detail.Score)
		}
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"hello", 2},
		{"code", 1},
		{"beautiful", 4},
		{"rhythm", 1},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := countSyllables(tt.word); got != tt.want {
				t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("First one. Second one! Third?? ")
	if len(sentences) != 3 {
		t.Errorf("got %d sentences, want 3: %q", len(sentences), sentences)
	}
	if len(splitSentences("")) != 0 {
		t.Error("empty text should yield no sentences")
	}
}
