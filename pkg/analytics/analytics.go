// Package analytics provides stopword-filtered keyword extraction over
// plain text. It backs the top-keywords field of a scan result.
package analytics

import (
	"sort"
	"strings"
)

// stopwords holds common English words and web-UI noise terms excluded
// from keyword ranking.
var stopwords = func() map[string]struct{} {
	const words = `
a about above across after again against all almost alone along already
also although always am among an and another any anyone anything anyway
are around as at back be became because become been before behind being
below beside besides between beyond both but by can cannot could did do
does doing done down during each either else enough even ever every
everyone everything few for from further had has have having he hence her
here hers herself him himself his how however i if in indeed into is it
its itself just keep last least less let like likely made make many may
maybe me meanwhile might mine more moreover most mostly much must my
myself neither never next no nobody none nor not nothing now nowhere of
off often on once one only onto or other others otherwise our ours out
over own per perhaps please put rather same see seem seems several she
should since so some someone something sometimes somewhere still such
than that the their theirs them themselves then there therefore these
they this those through throughout thus to together too toward towards
under until up upon us use very via was we well were what when whenever
where whether which while who whose why will with within without would
yet you your yours yourself
click clicked clicking button link menu page pages website site home
homepage search loading loaded load redirect redirected`
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopword reports whether word is filtered from keyword ranking.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// WordFrequency counts non-stopword occurrences in text. Words are
// lowercased and stripped of surrounding punctuation.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return (r < 'a' || r > 'z') && (r < '0' || r > '9')
		})
		if word == "" {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

// TopKeywords returns the n most frequent non-stopword words in text.
// Ranking is deterministic: count descending, then word ascending.
func TopKeywords(text string, n int) []string {
	frequencies := WordFrequency(text)

	type wordCount struct {
		word  string
		count int
	}
	counts := make([]wordCount, 0, len(frequencies))
	for word, count := range frequencies {
		counts = append(counts, wordCount{word, count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	if n > len(counts) {
		n = len(counts)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = counts[i].word
	}
	return top
}
