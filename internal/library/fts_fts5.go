//go:build sqlite_fts5

package library

import (
	"database/sql"
	"fmt"
	"strings"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS songs_fts USING fts5(
			id UNINDEXED,
			title,
			artist,
			lyrics,
			themes,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

func ftsUpsert(tx *sql.Tx, id, title, artist, lyrics string, themes []string) error {
	_, _ = tx.Exec(`DELETE FROM songs_fts WHERE id = ?`, id)
	_, err := tx.Exec(`INSERT INTO songs_fts (id, title, artist, lyrics, themes) VALUES (?, ?, ?, ?, ?)`,
		id, title, artist, lyrics, strings.Join(themes, " "))
	if err != nil {
		return fmt.Errorf("library: upsert fts: %w", err)
	}
	return nil
}

func ftsDelete(tx *sql.Tx, id string) {
	_, _ = tx.Exec(`DELETE FROM songs_fts WHERE id = ?`, id)
}

// Search performs an FTS5 full-text search and returns matching songs
// with lyric snippets.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT id,
		       title,
		       artist,
		       snippet(songs_fts, 3, '<b>', '</b>', '...', 64)
		FROM songs_fts
		WHERE songs_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("library: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Title, &r.Artist, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
