package keyflow

import (
	"testing"

	"github.com/starford/cantor/internal/models"
)

func entriesWithKeys(keys ...string) []models.SetListSong {
	out := make([]models.SetListSong, len(keys))
	for i, k := range keys {
		out[i] = models.SetListSong{SongID: k, Order: i + 1, Key: k}
	}
	return out
}

func TestOptimize_CompatiblePairUntouched(t *testing.T) {
	entries := entriesWithKeys("G", "C")

	if n := Optimize(entries); n != 0 {
		t.Fatalf("transposed %d, want 0", n)
	}
	if entries[1].Key != "C" || entries[1].SpecialInstructions != "" {
		t.Errorf("compatible key mutated: %+v", entries[1])
	}
}

func TestOptimize_IncompatiblePairTransposed(t *testing.T) {
	// E is not in C's neighbor list; it becomes C's first neighbor, F.
	entries := entriesWithKeys("C", "E")

	if n := Optimize(entries); n != 1 {
		t.Fatalf("transposed %d, want 1", n)
	}
	if entries[1].Key != "F" {
		t.Errorf("key = %q, want F", entries[1].Key)
	}
	want := "Transposed from E to F for smoother transition"
	if entries[1].SpecialInstructions != want {
		t.Errorf("instructions = %q, want %q", entries[1].SpecialInstructions, want)
	}
}

func TestOptimize_UnknownKeysLeftAlone(t *testing.T) {
	// Bb is not in the table, so neither the Bb entry nor its successor
	// is checked against it.
	entries := entriesWithKeys("Bb", "E")

	if n := Optimize(entries); n != 0 {
		t.Fatalf("transposed %d, want 0", n)
	}
	if entries[1].Key != "E" {
		t.Errorf("key = %q, want E untouched", entries[1].Key)
	}
}

func TestOptimize_SecondPassIsNoOp(t *testing.T) {
	entries := entriesWithKeys("C", "E", "D", "F")
	Optimize(entries)

	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	var instructions []string
	for _, e := range entries {
		instructions = append(instructions, e.SpecialInstructions)
	}

	if n := Optimize(entries); n != 0 {
		t.Fatalf("second pass transposed %d, want 0", n)
	}
	for i, e := range entries {
		if e.Key != keys[i] || e.SpecialInstructions != instructions[i] {
			t.Errorf("entry %d changed on second pass: %+v", i, e)
		}
	}
}

func TestOptimize_ChecksAgainstMutatedPredecessor(t *testing.T) {
	// The one-pass walk compares each entry to its predecessor's key as
	// already mutated, so the chain settles in a single pass.
	entries := entriesWithKeys("C", "E", "E")
	Optimize(entries)

	// Entry 1: E incompatible with C -> F. Entry 2: E incompatible with F -> Bb.
	if entries[1].Key != "F" {
		t.Errorf("entry 1 key = %q, want F", entries[1].Key)
	}
	if entries[2].Key != "Bb" {
		t.Errorf("entry 2 key = %q, want Bb", entries[2].Key)
	}
}

func TestOptimize_EmptyAndSingle(t *testing.T) {
	if n := Optimize(nil); n != 0 {
		t.Errorf("nil list transposed %d", n)
	}
	single := entriesWithKeys("C")
	if n := Optimize(single); n != 0 {
		t.Errorf("single entry transposed %d", n)
	}
}

func TestCompatible(t *testing.T) {
	cases := []struct {
		prev, next string
		want       bool
	}{
		{"C", "F", true},
		{"C", "G", true},
		{"C", "E", false},
		{"G", "Em", true},
		{"Bb", "anything", true}, // unknown prev: no check performed
	}
	for _, tc := range cases {
		if got := Compatible(tc.prev, tc.next); got != tc.want {
			t.Errorf("Compatible(%q, %q) = %v, want %v", tc.prev, tc.next, got, tc.want)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("C") || Known("Bb") {
		t.Error("Known should accept C and reject Bb")
	}
}
