package library

import (
	"encoding/json"
	"fmt"
	"time"
)

// SongRow represents a row in the songs table.
type SongRow struct {
	ID        string
	Title     string
	Artist    string
	Genre     string
	Language  string
	Themes    []string
	Checksum  string
	UpdatedAt time.Time
}

// SearchResult represents one search hit.
type SearchResult struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Snippet string `json:"snippet"`
}

// UpsertSong inserts or replaces a song row and its FTS entry within a
// transaction.
func (db *DB) UpsertSong(r SongRow, lyrics string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("library: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	themesJSON, _ := json.Marshal(r.Themes)

	_, err = tx.Exec(`
		INSERT INTO songs (id, title, artist, genre, language, themes, lyrics, checksum, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title      = excluded.title,
			artist     = excluded.artist,
			genre      = excluded.genre,
			language   = excluded.language,
			themes     = excluded.themes,
			lyrics     = excluded.lyrics,
			checksum   = excluded.checksum,
			updated_at = excluded.updated_at
	`, r.ID, r.Title, r.Artist, r.Genre, r.Language, string(themesJSON), lyrics, r.Checksum, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("library: upsert song: %w", err)
	}

	// FTS upsert (no-op when the FTS5 tag is absent).
	if err := ftsUpsert(tx, r.ID, r.Title, r.Artist, lyrics, r.Themes); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteSong removes a song row and its FTS entry.
func (db *DB) DeleteSong(id string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("library: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, id)
	_, _ = tx.Exec(`DELETE FROM songs WHERE id = ?`, id)

	return tx.Commit()
}

// AllChecksums returns the stored checksum of every indexed song.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT id, checksum FROM songs`)
	if err != nil {
		return nil, fmt.Errorf("library: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var id, cs string
		if err := rows.Scan(&id, &cs); err != nil {
			return nil, err
		}
		out[id] = cs
	}
	return out, rows.Err()
}
