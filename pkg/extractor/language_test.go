package extractor

import (
	"strings"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	code, confidence, ok := detectLanguage(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 5))
	if !ok {
		t.Fatal("detectLanguage() ok = false for clear English text")
	}
	if code != "en" {
		t.Errorf("code = %q, want en", code)
	}
	if confidence <= 0 || confidence > 1 {
		t.Errorf("confidence = %f, out of (0,1]", confidence)
	}
}

func TestDetectLanguage_ShortText(t *testing.T) {
	if _, _, ok := detectLanguage("hi there"); ok {
		t.Error("detectLanguage() ok = true for sub-20-char text")
	}
}

func TestDetectLanguage_SampleCutOnRuneBoundary(t *testing.T) {
	// Each kana is 3 bytes, so the 1024-byte sample limit falls inside
	// a character; the cut must back off to a rune boundary.
	text := strings.Repeat("こんにちは世界です。", 60)
	if len(text) <= languageSampleLimit {
		t.Fatalf("fixture too short: %d bytes", len(text))
	}
	if languageSampleLimit%3 == 0 {
		t.Fatal("fixture does not straddle the limit")
	}

	code, _, ok := detectLanguage(text)
	if !ok {
		t.Fatal("detectLanguage() ok = false for long Japanese text")
	}
	if code != "ja" {
		t.Errorf("code = %q, want ja", code)
	}
}
