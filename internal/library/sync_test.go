package library_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/starford/cantor/internal/catalog"
	"github.com/starford/cantor/internal/library"
	"github.com/starford/cantor/internal/testutil"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSync_IndexesCatalogSongs(t *testing.T) {
	db := testutil.TestLibrary(t)
	store := testutil.SeededStore(t)

	if err := library.Sync(db, store, discard()); err != nil {
		t.Fatal(err)
	}

	results, err := db.Search("grace", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != "amazing-grace" {
		t.Errorf("search grace = %+v, want the one demo song", results)
	}

	// Title match works too.
	results, err = db.Search("How Great", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != "how-great-thou-art" {
		t.Errorf("search title = %+v", results)
	}
}

func TestSync_RemovesStaleEntries(t *testing.T) {
	db := testutil.TestLibrary(t)
	store := testutil.SeededStore(t)

	if err := library.Sync(db, store, discard()); err != nil {
		t.Fatal(err)
	}

	// Reload the catalog with only one of the two songs.
	store.Replace(catalog.Seed{Songs: testutil.DemoSongs()[:1]})
	if err := library.Sync(db, store, discard()); err != nil {
		t.Fatal(err)
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}
	if len(checksums) != 1 {
		t.Errorf("index has %d entries after shrink, want 1", len(checksums))
	}
	if _, ok := checksums["amazing-grace"]; !ok {
		t.Errorf("surviving song missing from index: %v", checksums)
	}
}

func TestSync_UnchangedCatalogIsStable(t *testing.T) {
	db := testutil.TestLibrary(t)
	store := testutil.SeededStore(t)

	if err := library.Sync(db, store, discard()); err != nil {
		t.Fatal(err)
	}
	before, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}

	if err := library.Sync(db, store, discard()); err != nil {
		t.Fatal(err)
	}
	after, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}

	if len(before) != len(after) {
		t.Fatalf("entry count changed: %d -> %d", len(before), len(after))
	}
	for id, cs := range before {
		if after[id] != cs {
			t.Errorf("checksum for %s changed on a no-op sync", id)
		}
	}
}

func TestSync_PicksUpEdits(t *testing.T) {
	db := testutil.TestLibrary(t)
	store := testutil.SeededStore(t)

	if err := library.Sync(db, store, discard()); err != nil {
		t.Fatal(err)
	}

	songs := testutil.DemoSongs()
	songs[0].Lyrics = "twas grace that taught my heart to fear"
	store.Replace(catalog.Seed{Songs: songs})
	if err := library.Sync(db, store, discard()); err != nil {
		t.Fatal(err)
	}

	results, err := db.Search("taught my heart", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != "amazing-grace" {
		t.Errorf("edited lyrics not searchable: %+v", results)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	db := testutil.TestLibrary(t)
	if err := library.Sync(db, catalog.NewStore(), discard()); err != nil {
		t.Fatal(err)
	}
	results, err := db.Search("anything", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("empty index returned %+v", results)
	}
}

func TestUpsertSong_Idempotent(t *testing.T) {
	db := testutil.TestLibrary(t)
	row := library.SongRow{ID: "s1", Title: "Title", Artist: "Artist", Checksum: "abc"}
	for i := 0; i < 2; i++ {
		if err := db.UpsertSong(row, "some lyrics"); err != nil {
			t.Fatal(err)
		}
	}
	checksums, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}
	if len(checksums) != 1 || checksums["s1"] != "abc" {
		t.Errorf("checksums = %v", checksums)
	}
	if err := db.DeleteSong("s1"); err != nil {
		t.Fatal(err)
	}
	checksums, err = db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}
	if len(checksums) != 0 {
		t.Errorf("entry not deleted: %v", checksums)
	}
}
