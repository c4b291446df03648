// Package planservice coordinates the catalog, the recommendation
// engines, and the search index behind one service consumed by both the
// REST API and the MCP server.
package planservice

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/starford/cantor/internal/catalog"
	"github.com/starford/cantor/internal/chords"
	"github.com/starford/cantor/internal/library"
	"github.com/starford/cantor/internal/models"
	"github.com/starford/cantor/internal/recommend"
	"github.com/starford/cantor/internal/schedule"
	"github.com/starford/cantor/internal/scoring"
	"github.com/starford/cantor/internal/setlist"
)

// EventCallback is notified after a mutating operation (currently only
// set list creation) so callers can fan the change out, e.g. over SSE.
type EventCallback func(kind, id string)

// Service exposes the planner operations over one catalog store.
type Service struct {
	store     *catalog.Store
	lib       library.SongIndex
	weights   scoring.Weights
	generator *setlist.Generator
	onEvent   EventCallback
}

// NewService creates a planner service. lib may be nil when search is
// not wired (e.g. the MCP-only mode of some tests).
func NewService(store *catalog.Store, lib library.SongIndex, weights scoring.Weights) *Service {
	return &Service{
		store:     store,
		lib:       lib,
		weights:   weights,
		generator: setlist.NewGenerator(store, weights),
	}
}

// SetEventCallback registers cb to be notified of service events.
func (s *Service) SetEventCallback(cb EventCallback) {
	s.onEvent = cb
}

// RecommendSongs returns up to 20 catalog songs ranked against the
// criteria. An empty list is a valid result.
func (s *Service) RecommendSongs(_ context.Context, c models.SongCriteria) []models.Song {
	return recommend.Recommend(s.store.Songs(), c, s.weights)
}

// GenerateSetList builds a draft set list and registers it in the
// catalog so list endpoints see it immediately.
func (s *Service) GenerateSetList(_ context.Context, cfg setlist.GenerateConfig) (*models.SetList, error) {
	sl, err := s.generator.Generate(cfg)
	if err != nil {
		return nil, err
	}
	if err := s.store.AddSetList(*sl); err != nil {
		return nil, err
	}
	if s.onEvent != nil {
		s.onEvent("setlist_created", sl.ID)
	}
	return sl, nil
}

// AnalyzeChordProgression parses chord text and reports key, difficulty,
// and substitution suggestions. Never fails.
func (s *Service) AnalyzeChordProgression(_ context.Context, text string) chords.Analysis {
	return chords.Analyze(text)
}

// ScheduleMusicians assigns musicians to the required instruments for a
// service date. Unstaffable instruments surface as conflicts, not errors.
func (s *Service) ScheduleMusicians(_ context.Context, date time.Time, instruments []string) schedule.Result {
	return schedule.Plan(date, instruments, s.store.Musicians())
}

// PracticeTrackOptions tunes a practice-track request.
type PracticeTrackOptions struct {
	Key   string   `json:"key,omitempty"`
	BPM   int      `json:"bpm,omitempty"`
	Parts []string `json:"parts,omitempty"`
}

// PracticeTrack describes a practice track for one song.
//
// This is a descriptor only: no audio is synthesized. TrackURL points at
// where a rendering pipeline would publish the file; the planner's job
// ends at handing the descriptor to the caller.
type PracticeTrack struct {
	SongID          string            `json:"song_id"`
	TrackURL        string            `json:"track_url"`
	DurationSeconds int               `json:"duration_seconds"`
	Settings        map[string]string `json:"settings"`
}

// GeneratePracticeTrack builds a practice-track descriptor for the given
// song. Unknown song ids are a NotFound error.
func (s *Service) GeneratePracticeTrack(_ context.Context, songID string, opts PracticeTrackOptions) (*PracticeTrack, error) {
	song, err := s.store.Song(songID)
	if err != nil {
		return nil, err
	}

	key := opts.Key
	if key == "" {
		key = song.Key
	}
	bpm := opts.BPM
	if bpm == 0 {
		bpm = song.BPM
	}

	settings := map[string]string{"key": key}
	if bpm > 0 {
		settings["bpm"] = fmt.Sprintf("%d", bpm)
	}
	for _, part := range opts.Parts {
		settings["part:"+part] = "on"
	}

	q := url.Values{"key": {key}}
	if bpm > 0 {
		q.Set("bpm", fmt.Sprintf("%d", bpm))
	}
	return &PracticeTrack{
		SongID:          song.ID,
		TrackURL:        fmt.Sprintf("/practice-tracks/%s.mp3?%s", url.PathEscape(song.ID), q.Encode()),
		DurationSeconds: song.DurationSeconds,
		Settings:        settings,
	}, nil
}

// Songs returns a read-only snapshot of the song catalog.
func (s *Service) Songs(_ context.Context) []models.Song {
	return s.store.Songs()
}

// Song returns one song by id.
func (s *Service) Song(_ context.Context, id string) (models.Song, error) {
	return s.store.Song(id)
}

// Musicians returns a read-only snapshot of the musician roster.
func (s *Service) Musicians(_ context.Context) []models.Musician {
	return s.store.Musicians()
}

// SetLists returns a read-only snapshot of all set lists.
func (s *Service) SetLists(_ context.Context) []models.SetList {
	return s.store.SetLists()
}

// SetList returns one set list by id.
func (s *Service) SetList(_ context.Context, id string) (models.SetList, error) {
	return s.store.SetList(id)
}

// Rehearsals returns a read-only snapshot of all rehearsals.
func (s *Service) Rehearsals(_ context.Context) []models.Rehearsal {
	return s.store.Rehearsals()
}

// SearchSongs runs a full-text query against the library index.
func (s *Service) SearchSongs(_ context.Context, query string, limit int) ([]library.SearchResult, error) {
	if s.lib == nil {
		return []library.SearchResult{}, nil
	}
	return s.lib.Search(query, limit)
}
