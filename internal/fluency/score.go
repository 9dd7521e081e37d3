package fluency

import (
	"math"
	"strings"
	"unicode"
)

const (
	// MinElapsedSeconds floors the elapsed duration used in the WPM
	// division, absorbing timer glitches near zero.
	MinElapsedSeconds = 1

	// MaxWordsPerMinute caps the reported pace. Anything above this is
	// a recognizer or timer glitch, not a reading speed.
	MaxWordsPerMinute = 250

	// OfflineAccuracy is reported when no transcript is available.
	// Never report 0% for an unmeasurable attempt: a false zero is a
	// discouraging signal, a fixed baseline is merely imprecise.
	OfflineAccuracy = 75.0

	bonusAccuracy = 80.0
)

// NormalizeWords flattens passage lines into a lowercase word sequence
// with punctuation stripped.
func NormalizeWords(lines []string) []string {
	var words []string
	for _, line := range lines {
		for _, w := range strings.Fields(line) {
			w = strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsNumber(r)
			}))
			if w != "" {
				words = append(words, w)
			}
		}
	}
	return words
}

// WordsPerMinute computes the reading pace for a passage of the given
// word count read over elapsedSeconds, floored at MinElapsedSeconds and
// capped at MaxWordsPerMinute.
func WordsPerMinute(targetWordCount int, elapsedSeconds float64) int {
	if elapsedSeconds < MinElapsedSeconds {
		elapsedSeconds = MinElapsedSeconds
	}
	wpm := int(math.Round(float64(targetWordCount) / elapsedSeconds * 60))
	if wpm > MaxWordsPerMinute {
		wpm = MaxWordsPerMinute
	}
	if wpm < 0 {
		wpm = 0
	}
	return wpm
}

// Accuracy computes lexical accuracy as the share of target words that
// appear anywhere in the transcript. Set membership, not edit distance:
// word order and repetition are not penalized, which keeps noisy
// recognizer output from tanking the score. An empty transcript means
// the attempt was unmeasurable and yields OfflineAccuracy.
func Accuracy(targetWords []string, transcript string) float64 {
	if strings.TrimSpace(transcript) == "" {
		return OfflineAccuracy
	}
	if len(targetWords) == 0 {
		return OfflineAccuracy
	}

	spoken := map[string]bool{}
	for _, w := range NormalizeWords([]string{transcript}) {
		spoken[w] = true
	}

	matched := 0
	for _, w := range targetWords {
		if spoken[w] {
			matched++
		}
	}

	pct := float64(matched) / float64(len(targetWords)) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
