package setlist

import (
	"errors"
	"testing"
	"time"

	"github.com/starford/cantor/internal/apperr"
	"github.com/starford/cantor/internal/catalog"
	"github.com/starford/cantor/internal/models"
	"github.com/starford/cantor/internal/scoring"
	"github.com/starford/cantor/internal/testutil"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	g := NewGenerator(testutil.SeededStore(t), scoring.DefaultWeights())
	g.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	g.newID = func() string { return "sl-test" }
	return g
}

func TestGenerate_BlankTitleRejected(t *testing.T) {
	g := testGenerator(t)
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := g.Generate(GenerateConfig{Title: title, DurationMinutes: 20})
		if !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("title %q: got %v, want ErrValidation", title, err)
		}
	}
}

func TestGenerate_SundayMorningGraceService(t *testing.T) {
	g := testGenerator(t)
	sl, err := g.Generate(GenerateConfig{
		Title:           "Test",
		Date:            time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC),
		ServiceType:     models.ServiceSundayMorning,
		Theme:           "grace",
		DurationMinutes: 25,
		Language:        "en",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(sl.Songs) != 2 {
		t.Fatalf("got %d songs, want 2", len(sl.Songs))
	}
	// The grace-themed opener outranks everything else in the demo catalog.
	if sl.Songs[0].SongID != "amazing-grace" {
		t.Errorf("opener = %q, want amazing-grace", sl.Songs[0].SongID)
	}
	if sl.Songs[1].SongID != "how-great-thou-art" {
		t.Errorf("second song = %q, want how-great-thou-art", sl.Songs[1].SongID)
	}
	if len(sl.KeyFlow) != 2 || sl.KeyFlow[0] != "G" {
		t.Errorf("KeyFlow = %v, want to start at G", sl.KeyFlow)
	}
	// C is a listed neighbor of G, so the second key stays put.
	if sl.KeyFlow[1] != "C" {
		t.Errorf("KeyFlow[1] = %q, want C", sl.KeyFlow[1])
	}
	if sl.TotalDurationSeconds != 520 {
		t.Errorf("TotalDurationSeconds = %d, want 520", sl.TotalDurationSeconds)
	}

	if sl.Status != models.SetListDraft {
		t.Errorf("Status = %q, want draft", sl.Status)
	}
	if sl.CreatedBy != CreatedBy {
		t.Errorf("CreatedBy = %q, want %q", sl.CreatedBy, CreatedBy)
	}
	if sl.ID != "sl-test" {
		t.Errorf("ID = %q", sl.ID)
	}
	for i, s := range sl.Songs {
		if s.Order != i+1 {
			t.Errorf("Songs[%d].Order = %d, want %d", i, s.Order, i+1)
		}
	}
}

func TestGenerate_SongBudget(t *testing.T) {
	cases := []struct {
		name string
		cfg  GenerateConfig
		max  int
	}{
		{"duration derived", GenerateConfig{Title: "t", DurationMinutes: 8}, 2},
		{"explicit max wins", GenerateConfig{Title: "t", DurationMinutes: 60, MaxSongs: 1}, 1},
		{"zero budget", GenerateConfig{Title: "t", DurationMinutes: 3}, 0},
	}
	g := testGenerator(t)
	for _, tc := range cases {
		sl, err := g.Generate(tc.cfg)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(sl.Songs) > tc.max {
			t.Errorf("%s: %d songs exceeds budget %d", tc.name, len(sl.Songs), tc.max)
		}
	}
}

func TestGenerate_EmptyCatalogYieldsEmptyDraft(t *testing.T) {
	g := NewGenerator(catalog.NewStore(), scoring.DefaultWeights())
	sl, err := g.Generate(GenerateConfig{Title: "Empty", DurationMinutes: 30})
	if err != nil {
		t.Fatal(err)
	}
	if len(sl.Songs) != 0 {
		t.Errorf("got %d songs from an empty catalog", len(sl.Songs))
	}
	if sl.Status != models.SetListDraft {
		t.Errorf("Status = %q, want draft", sl.Status)
	}
	if sl.TotalDurationSeconds != 0 {
		t.Errorf("TotalDurationSeconds = %d, want 0", sl.TotalDurationSeconds)
	}
}

func TestGenerate_NoSongRepeats(t *testing.T) {
	g := testGenerator(t)
	sl, err := g.Generate(GenerateConfig{Title: "t", DurationMinutes: 60})
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, s := range sl.Songs {
		if seen[s.SongID] {
			t.Errorf("song %q appears twice", s.SongID)
		}
		seen[s.SongID] = true
	}
}

func TestGenerate_LanguageFilterApplies(t *testing.T) {
	g := testGenerator(t)
	sl, err := g.Generate(GenerateConfig{Title: "t", DurationMinutes: 30, Language: "es"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sl.Songs) != 0 {
		t.Errorf("demo catalog is English only, got %d songs for es", len(sl.Songs))
	}
}
