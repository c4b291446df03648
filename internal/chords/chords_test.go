package chords

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyze_EmptyInput(t *testing.T) {
	a := Analyze("")
	if a.Key != "C" {
		t.Errorf("key = %q, want C", a.Key)
	}
	if len(a.Progression) != 0 {
		t.Errorf("progression = %v, want empty", a.Progression)
	}
	if a.Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", a.Difficulty)
	}
	if len(a.Suggestions) != 0 {
		t.Errorf("suggestions = %v, want empty", a.Suggestions)
	}
}

func TestAnalyze_CommonProgression(t *testing.T) {
	a := Analyze("C - Am - F - G")

	if a.Key != "C" {
		t.Errorf("key = %q, want C", a.Key)
	}
	if !reflect.DeepEqual(a.Progression, []string{"C", "Am", "F", "G"}) {
		t.Errorf("progression = %v", a.Progression)
	}
	if a.Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", a.Difficulty)
	}
	// C, Am, and F have substitution entries; G's slash voicings do, too.
	if len(a.Suggestions) != 4 {
		t.Fatalf("got %d suggestions, want 4: %v", len(a.Suggestions), a.Suggestions)
	}
	for i, chord := range []string{"C", "Am", "F", "G"} {
		if !strings.Contains(a.Suggestions[i], "instead of "+chord) {
			t.Errorf("suggestion %d = %q, want one for %s", i, a.Suggestions[i], chord)
		}
	}
}

func TestTokenize_Separators(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"C - Am - F - G", []string{"C", "Am", "F", "G"}},
		{"C|Am|F|G", []string{"C", "Am", "F", "G"}},
		{"C  Am\tF\nG", []string{"C", "Am", "F", "G"}},
		{"C--Am||F  -  G", []string{"C", "Am", "F", "G"}},
		{"   ", []string{}},
		{"-|-", []string{}},
	}
	for _, tc := range cases {
		if got := Tokenize(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAnalyze_KeyDetection(t *testing.T) {
	cases := []struct {
		in  string
		key string
	}{
		{"G D Em C", "G"},
		{"D A Bm G", "D"},
		{"F Bb Gm C", "F"},
		{"X7 Y9 Z11", "C"}, // nothing matches: default C
	}
	for _, tc := range cases {
		if a := Analyze(tc.in); a.Key != tc.key {
			t.Errorf("Analyze(%q).Key = %q, want %q", tc.in, a.Key, tc.key)
		}
	}
}

func TestAnalyze_KeyTieBreaksToEarlierDeclared(t *testing.T) {
	// C and G are both diatonic to the keys of C and G; the tie goes to
	// C because it is declared first.
	a := Analyze("C G")
	if a.Key != "C" {
		t.Errorf("key = %q, want C on tie", a.Key)
	}
}

func TestAnalyze_HardDifficulty(t *testing.T) {
	// Two of four tokens are outside both chord sets: 50% > 30%.
	a := Analyze("C F#7 Bdim G")
	if a.Difficulty != "hard" {
		t.Errorf("difficulty = %q, want hard", a.Difficulty)
	}
}

func TestAnalyze_MediumDifficulty(t *testing.T) {
	// Two of four tokens are medium (Dm, Bb): 50% > 40%, no hard chords.
	a := Analyze("C Dm Bb G")
	if a.Difficulty != "medium" {
		t.Errorf("difficulty = %q, want medium", a.Difficulty)
	}
}

func TestAnalyze_SuggestionFormat(t *testing.T) {
	a := Analyze("Am")
	want := "Try Am7, Am/C, Asus2 instead of Am"
	if len(a.Suggestions) != 1 || a.Suggestions[0] != want {
		t.Errorf("suggestions = %v, want [%q]", a.Suggestions, want)
	}
}

func TestAnalyze_RepeatedTokensRepeatSuggestions(t *testing.T) {
	a := Analyze("C G C")
	if len(a.Suggestions) != 3 {
		t.Errorf("got %d suggestions, want one per occurrence: %v", len(a.Suggestions), a.Suggestions)
	}
}
