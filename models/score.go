package models

// ScoreLevel buckets a percentage into a coarse grade.
type ScoreLevel string

const (
	LevelExcellent ScoreLevel = "excellent"
	LevelGood      ScoreLevel = "good"
	LevelModerate  ScoreLevel = "moderate"
	LevelPoor      ScoreLevel = "poor"
)

// GetScoreLevel maps a percentage to its grade bracket.
// Boundaries are inclusive at the bottom: 80 is excellent, 79 is good.
func GetScoreLevel(percentage int) ScoreLevel {
	switch {
	case percentage >= 80:
		return LevelExcellent
	case percentage >= 60:
		return LevelGood
	case percentage >= 40:
		return LevelModerate
	default:
		return LevelPoor
	}
}

var levelLabels = map[ScoreLevel]string{
	LevelExcellent: "Excellent",
	LevelGood:      "Good",
	LevelModerate:  "Needs Work",
	LevelPoor:      "Poor",
}

// GetScoreLabel returns the human-readable label for a percentage.
func GetScoreLabel(percentage int) string {
	return levelLabels[GetScoreLevel(percentage)]
}
