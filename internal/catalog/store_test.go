package catalog

import (
	"errors"
	"testing"

	"github.com/starford/cantor/internal/apperr"
	"github.com/starford/cantor/internal/models"
)

func TestStore_SongRoundTrip(t *testing.T) {
	s := NewStore()
	if err := s.AddSongs(models.Song{ID: "s1", Title: "One"}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Song("s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "One" {
		t.Errorf("Title = %q", got.Title)
	}

	if _, err := s.Song("nope"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
	if err := s.AddSongs(models.Song{ID: "s1", Title: "Dup"}); !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("duplicate id: got %v, want ErrAlreadyExists", err)
	}
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	if err := s.AddSongs(models.Song{ID: "s1", Title: "One"}); err != nil {
		t.Fatal(err)
	}

	snap := s.Songs()
	snap[0].Title = "mutated"

	got, err := s.Song("s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "One" {
		t.Errorf("snapshot mutation leaked into the store: %q", got.Title)
	}
}

func TestStore_ReplacePreservesGeneratedSetLists(t *testing.T) {
	s := NewStore()
	if err := s.AddSetList(models.SetList{ID: "sl1", Title: "Draft"}); err != nil {
		t.Fatal(err)
	}

	// A reload without set lists of its own keeps the registered drafts.
	s.Replace(Seed{Songs: []models.Song{{ID: "s1", Title: "One"}}})
	if _, err := s.SetList("sl1"); err != nil {
		t.Errorf("draft lost across reload: %v", err)
	}
	if len(s.Songs()) != 1 {
		t.Errorf("songs not replaced")
	}

	// A seed that does carry set lists wins.
	s.Replace(Seed{SetLists: []models.SetList{{ID: "sl2", Title: "Seeded"}}})
	if _, err := s.SetList("sl1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("old draft should be gone, got %v", err)
	}
	if _, err := s.SetList("sl2"); err != nil {
		t.Errorf("seeded set list missing: %v", err)
	}
}

func TestStore_MusicianLookup(t *testing.T) {
	s := NewStore()
	if err := s.AddMusicians(models.Musician{ID: "m1", Name: "Ana"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Musician("m1"); err != nil {
		t.Error(err)
	}
	if _, err := s.Musician("m2"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if err := s.AddMusicians(models.Musician{ID: "m1"}); !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("got %v, want ErrAlreadyExists", err)
	}
}

func TestStore_Rehearsals(t *testing.T) {
	s := NewStore()
	if err := s.AddRehearsals(models.Rehearsal{ID: "r1"}); err != nil {
		t.Fatal(err)
	}
	if len(s.Rehearsals()) != 1 {
		t.Errorf("Rehearsals = %d, want 1", len(s.Rehearsals()))
	}
	if err := s.AddRehearsals(models.Rehearsal{ID: "r1"}); !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("got %v, want ErrAlreadyExists", err)
	}
}
