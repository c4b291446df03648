// Package keyflow smooths the key transitions of an ordered set list.
package keyflow

import (
	"fmt"

	"github.com/starford/cantor/internal/models"
)

// compatibleKeys maps each supported key to its diatonically related
// neighbors. Keys outside this table are never checked or transposed;
// extending coverage (minor keys, flats) is a catalog-quality concern,
// not something to guess at here.
var compatibleKeys = map[string][]string{
	"C": {"F", "G", "Am", "Dm"},
	"G": {"C", "D", "Em", "Am"},
	"D": {"G", "A", "Bm", "Em"},
	"A": {"D", "E", "F#m", "Bm"},
	"E": {"A", "B", "C#m", "G#m"},
	"F": {"Bb", "C", "Dm", "Gm"},
}

// Known reports whether the key appears in the compatibility table.
func Known(key string) bool {
	_, ok := compatibleKeys[key]
	return ok
}

// Compatible reports whether next is listed as a neighbor of prev.
// Unknown prev keys are treated as compatible with anything.
func Compatible(prev, next string) bool {
	neighbors, ok := compatibleKeys[prev]
	if !ok {
		return true
	}
	return containsKey(neighbors, next)
}

// Optimize walks the ordered entries left to right and, whenever an
// entry's key is not in the compatibility list of its predecessor's key,
// replaces it with the first entry of that list and records the
// substitution in the entry's special instructions. It returns the number
// of transpositions made.
//
// The pass is deliberately non-cascading: a transposition at position i
// is checked against whatever key position i+1 already had, never
// re-evaluated after the fact. This matches the planner's historical
// behavior and makes a second pass over an already smoothed list a no-op.
func Optimize(entries []models.SetListSong) int {
	transposed := 0
	for i := 1; i < len(entries); i++ {
		neighbors, ok := compatibleKeys[entries[i-1].Key]
		if !ok || len(neighbors) == 0 {
			continue
		}
		cur := entries[i].Key
		if containsKey(neighbors, cur) {
			continue
		}
		next := neighbors[0]
		entries[i].Key = next
		entries[i].SpecialInstructions = fmt.Sprintf("Transposed from %s to %s for smoother transition", cur, next)
		transposed++
	}
	return transposed
}

func containsKey(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}
