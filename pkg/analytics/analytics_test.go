package analytics

import (
	"testing"
)

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"website", true},
		{"kubernetes", false},
		{"pipeline", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := IsStopword(tt.word); got != tt.want {
				t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestWordFrequency(t *testing.T) {
	freq := WordFrequency("The pipeline moves data. The pipeline, again, moves data!")

	if freq["pipeline"] != 2 {
		t.Errorf("pipeline count = %d, want 2", freq["pipeline"])
	}
	if freq["data"] != 2 {
		t.Errorf("data count = %d, want 2 (punctuation must be stripped)", freq["data"])
	}
	if _, ok := freq["the"]; ok {
		t.Error("stopword 'the' should not be counted")
	}
	if _, ok := freq["again"]; ok {
		t.Error("stopword 'again' should not be counted")
	}
}

func TestTopKeywords(t *testing.T) {
	text := "widget widget widget pipeline pipeline tuning alpha beta"

	got := TopKeywords(text, 3)
	want := []string{"widget", "pipeline", "alpha"}
	if len(got) != len(want) {
		t.Fatalf("TopKeywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopKeywords()[%d] = %q, want %q (ties break alphabetically)", i, got[i], want[i])
		}
	}
}

func TestTopKeywords_FewerWordsThanRequested(t *testing.T) {
	got := TopKeywords("widget pipeline", 10)
	if len(got) != 2 {
		t.Errorf("got %d keywords, want 2", len(got))
	}
}

func TestTopKeywords_EmptyText(t *testing.T) {
	if got := TopKeywords("", 10); len(got) != 0 {
		t.Errorf("TopKeywords(\"\") = %v, want empty", got)
	}
}
