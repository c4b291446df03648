// Package chords parses chord-progression text and estimates its key,
// difficulty, and possible substitutions.
package chords

import (
	"fmt"
	"strings"
	"unicode"
)

// Analysis is the result of analyzing a chord progression.
type Analysis struct {
	Key         string   `json:"key"`
	Progression []string `json:"progression"`
	Difficulty  string   `json:"difficulty"`
	Suggestions []string `json:"suggestions"`
}

// keySignature pairs a key with its six diatonic chords. Declaration
// order matters: key-detection ties resolve to the earlier entry.
type keySignature struct {
	key    string
	chords []string
}

var keySignatures = []keySignature{
	{"C", []string{"C", "Dm", "Em", "F", "G", "Am"}},
	{"G", []string{"G", "Am", "Bm", "C", "D", "Em"}},
	{"D", []string{"D", "Em", "F#m", "G", "A", "Bm"}},
	{"A", []string{"A", "Bm", "C#m", "D", "E", "F#m"}},
	{"F", []string{"F", "Gm", "Am", "Bb", "C", "Dm"}},
}

var (
	easyChords   = map[string]bool{"C": true, "G": true, "Am": true, "F": true, "D": true, "Em": true}
	mediumChords = map[string]bool{"Dm": true, "A": true, "E": true, "Bm": true, "F#m": true, "Bb": true}
)

// substitutions lists richer voicings to try in place of common chords.
var substitutions = map[string][]string{
	"C":  {"Cadd9", "Csus4", "C/E"},
	"G":  {"G/B", "Gsus4", "G/D"},
	"Am": {"Am7", "Am/C", "Asus2"},
	"F":  {"Fmaj7", "F/A", "Fsus2"},
}

// Analyze tokenizes input on whitespace, hyphens, and pipes, then infers
// the key, rates the difficulty, and collects substitution suggestions.
// It never fails: empty or unparseable input yields an empty progression
// in the default key C rated easy.
func Analyze(input string) Analysis {
	tokens := Tokenize(input)
	a := Analysis{
		Key:         detectKey(tokens),
		Progression: tokens,
		Difficulty:  rateDifficulty(tokens),
		Suggestions: []string{},
	}
	for _, tok := range tokens {
		if alts, ok := substitutions[tok]; ok {
			a.Suggestions = append(a.Suggestions, fmt.Sprintf("Try %s instead of %s", strings.Join(alts, ", "), tok))
		}
	}
	return a
}

// Tokenize splits chord text on runs of whitespace, hyphens, and pipes,
// discarding empty tokens.
func Tokenize(input string) []string {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '|'
	})
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// detectKey votes each token against the diatonic signature of every
// known key and picks the key with the most matches. Ties keep the
// earlier declared key; no matches at all defaults to C.
func detectKey(tokens []string) string {
	best, bestCount := "C", 0
	for _, sig := range keySignatures {
		count := 0
		for _, tok := range tokens {
			for _, ch := range sig.chords {
				if tok == ch {
					count++
					break
				}
			}
		}
		if count > bestCount {
			best, bestCount = sig.key, count
		}
	}
	return best
}

// rateDifficulty classifies each chord as easy, medium, or hard and
// rolls the counts up: more than 30% hard chords rates hard, more than
// 40% medium chords rates medium, anything else easy.
func rateDifficulty(tokens []string) string {
	if len(tokens) == 0 {
		return "easy"
	}
	var medium, hard int
	for _, tok := range tokens {
		switch {
		case easyChords[tok]:
		case mediumChords[tok]:
			medium++
		default:
			hard++
		}
	}
	total := float64(len(tokens))
	switch {
	case float64(hard)/total > 0.3:
		return "hard"
	case float64(medium)/total > 0.4:
		return "medium"
	default:
		return "easy"
	}
}
