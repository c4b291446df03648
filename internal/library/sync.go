package library

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/starford/cantor/internal/catalog"
	"github.com/starford/cantor/internal/models"
)

// Sync brings the search index up to date with the catalog:
//   - new or changed songs are upserted
//   - songs no longer in the catalog are removed
//
// Changes are detected via a checksum over the song's serialized form,
// so repeated syncs against an unchanged catalog touch nothing.
func Sync(db *DB, store *catalog.Store, logger *slog.Logger) error {
	songs := store.Songs()

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(songs))
	for _, song := range songs {
		seen[song.ID] = struct{}{}

		cs := songChecksum(song)
		if checksums[song.ID] == cs {
			continue
		}

		row := SongRow{
			ID:        song.ID,
			Title:     song.Title,
			Artist:    song.Artist,
			Genre:     string(song.Genre),
			Language:  string(song.Language),
			Themes:    song.Themes,
			Checksum:  cs,
			UpdatedAt: time.Now(),
		}
		if err := db.UpsertSong(row, song.Lyrics); err != nil {
			logger.Warn("library sync: index failed", slog.String("id", song.ID), slog.String("error", err.Error()))
		} else {
			logger.Debug("library sync: indexed", slog.String("id", song.ID))
		}
	}

	// Remove stale entries.
	for id := range checksums {
		if _, ok := seen[id]; !ok {
			if err := db.DeleteSong(id); err != nil {
				logger.Warn("library sync: delete failed", slog.String("id", id), slog.String("error", err.Error()))
			} else {
				logger.Debug("library sync: removed stale", slog.String("id", id))
			}
		}
	}

	return nil
}

// songChecksum hashes the serialized song so sync can tell changed
// entries from unchanged ones.
func songChecksum(song models.Song) string {
	data, _ := json.Marshal(song)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
