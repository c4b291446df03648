// Package testutil provides shared test helpers for building catalogs
// and temporary search indexes.
package testutil

import (
	"os"
	"testing"

	"github.com/starford/cantor/internal/catalog"
	"github.com/starford/cantor/internal/library"
	"github.com/starford/cantor/internal/models"
)

// TestLibrary creates a temporary SQLite song index that is
// automatically cleaned up.
func TestLibrary(t *testing.T) *library.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "cantor-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := library.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// SeededStore creates a catalog store preloaded with the demo songs and
// musicians.
func SeededStore(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore()
	if err := store.AddSongs(DemoSongs()...); err != nil {
		t.Fatal(err)
	}
	if err := store.AddMusicians(DemoMusicians()...); err != nil {
		t.Fatal(err)
	}
	return store
}

// DemoSongs returns the two canonical demo catalog entries used across
// the test suite.
func DemoSongs() []models.Song {
	return []models.Song{
		{
			ID:              "amazing-grace",
			Title:           "Amazing Grace",
			Artist:          "John Newton",
			Key:             "G",
			Tempo:           models.TempoSlow,
			BPM:             72,
			TimeSignature:   "3/4",
			Difficulty:      models.DifficultyBeginner,
			Genre:           models.GenreHymn,
			Language:        "en",
			Themes:          []string{"grace", "redemption", "salvation"},
			Lyrics:          "Amazing grace, how sweet the sound, that saved a wretch like me",
			DurationSeconds: 240,
			IsPublicDomain:  true,
			Tags:            []string{"classic", "favorite"},
			Instruments: []models.InstrumentPart{
				{Name: "piano", Type: "keys", IsRequired: true},
			},
		},
		{
			ID:              "how-great-thou-art",
			Title:           "How Great Thou Art",
			Artist:          "Carl Boberg",
			Key:             "C",
			Tempo:           models.TempoMedium,
			BPM:             80,
			TimeSignature:   "4/4",
			Difficulty:      models.DifficultyBeginner,
			Genre:           models.GenreHymn,
			Language:        "en",
			Themes:          []string{"worship", "majesty", "praise"},
			Lyrics:          "O Lord my God, when I in awesome wonder",
			DurationSeconds: 280,
			IsPublicDomain:  true,
			Tags:            []string{"classic"},
			Instruments: []models.InstrumentPart{
				{Name: "piano", Type: "keys", IsRequired: true},
				{Name: "acoustic guitar", Type: "strings", IsRequired: false},
			},
		},
	}
}

// DemoMusicians returns a small roster covering the common scheduling
// cases: differing skill levels, availability, and an inactive member.
func DemoMusicians() []models.Musician {
	sundays := map[string]bool{"sunday": true, "wednesday": true}
	return []models.Musician{
		{
			ID:           "m-sarah",
			Name:         "Sarah",
			Instruments:  []string{"piano", "organ"},
			SkillLevel:   models.SkillAdvanced,
			Availability: sundays,
			IsActive:     true,
		},
		{
			ID:           "m-james",
			Name:         "James",
			Instruments:  []string{"piano"},
			SkillLevel:   models.SkillProfessional,
			Availability: sundays,
			IsActive:     true,
		},
		{
			ID:           "m-rosa",
			Name:         "Rosa",
			Instruments:  []string{"acoustic guitar", "bass"},
			SkillLevel:   models.SkillIntermediate,
			Availability: map[string]bool{"sunday": true},
			IsActive:     true,
		},
		{
			ID:           "m-retired",
			Name:         "Walter",
			Instruments:  []string{"drums"},
			SkillLevel:   models.SkillProfessional,
			Availability: sundays,
			IsActive:     false,
		},
	}
}
