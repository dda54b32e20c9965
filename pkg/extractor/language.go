package extractor

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// languageSampleLimit caps how much text is handed to the language
// detector; the first kilobyte is plenty for a confident guess.
const languageSampleLimit = 1024

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// detectLanguage guesses the language of text when the markup declares
// none. Returns the lowercase ISO 639-1 code and a confidence in [0,1].
// Very short text yields no guess.
func detectLanguage(text string) (code string, confidence float64, ok bool) {
	sample := strings.TrimSpace(text)
	if len(sample) < 20 {
		return "", 0, false
	}
	if len(sample) > languageSampleLimit {
		// Back off to a rune boundary so the detector never sees a
		// truncated multi-byte character.
		cut := languageSampleLimit
		for cut > 0 && !utf8.RuneStart(sample[cut]) {
			cut--
		}
		sample = sample[:cut]
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Portuguese,
				lingua.Italian,
				lingua.Dutch,
				lingua.Russian,
				lingua.Japanese,
				lingua.Chinese,
			).
			Build()
	})

	language, found := detector.DetectLanguageOf(sample)
	if !found {
		return "", 0, false
	}

	confidence = detector.ComputeLanguageConfidence(sample, language)
	return strings.ToLower(language.IsoCode639_1().String()), confidence, true
}
