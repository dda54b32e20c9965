package models

import "testing"

func TestGetScoreLabel_Boundaries(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{0, "Poor"},
		{39, "Poor"},
		{40, "Needs Work"},
		{59, "Needs Work"},
		{60, "Good"},
		{79, "Good"},
		{80, "Excellent"},
		{100, "Excellent"},
	}

	for _, tt := range tests {
		if got := GetScoreLabel(tt.percentage); got != tt.want {
			t.Errorf("GetScoreLabel(%d) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestGetScoreLevel(t *testing.T) {
	tests := []struct {
		percentage int
		want       ScoreLevel
	}{
		{85, LevelExcellent},
		{65, LevelGood},
		{45, LevelModerate},
		{10, LevelPoor},
	}

	for _, tt := range tests {
		if got := GetScoreLevel(tt.percentage); got != tt.want {
			t.Errorf("GetScoreLevel(%d) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}
