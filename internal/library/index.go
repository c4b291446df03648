package library

// SongIndex defines the interface for song index operations.
type SongIndex interface {
	UpsertSong(r SongRow, lyrics string) error
	DeleteSong(id string) error
	AllChecksums() (map[string]string, error)
	Search(query string, limit int) ([]SearchResult, error)
	Close() error
}

// Verify *DB satisfies SongIndex at compile time.
var _ SongIndex = (*DB)(nil)
