package api

import (
	"time"

	"github.com/starford/cantor/internal/chords"
	"github.com/starford/cantor/internal/library"
	"github.com/starford/cantor/internal/models"
	"github.com/starford/cantor/internal/planservice"
	"github.com/starford/cantor/internal/schedule"
	"github.com/starford/cantor/internal/setlist"
)

// RecommendRequest is the request body for song recommendations.
type RecommendRequest = models.SongCriteria

// RecommendResponse wraps a ranked recommendation list.
type RecommendResponse struct {
	Songs []models.Song `json:"songs" validate:"required"`
}

// GenerateSetListRequest is the request body for set list generation.
type GenerateSetListRequest = setlist.GenerateConfig

// AnalyzeChordsRequest is the request body for chord analysis.
type AnalyzeChordsRequest struct {
	Chords string `json:"chords" example:"C - Am - F - G" validate:"required"`
}

// ChordAnalysis is the chord analysis response (aliased from the domain layer).
type ChordAnalysis = chords.Analysis

// ScheduleRequest is the request body for musician scheduling.
type ScheduleRequest struct {
	Date        time.Time `json:"date" validate:"required"`
	Instruments []string  `json:"instruments" example:"piano,acoustic guitar" validate:"required"`
}

// ScheduleResult is the scheduling response (aliased from the domain layer).
type ScheduleResult = schedule.Result

// PracticeTrackRequest is the request body for practice-track generation.
type PracticeTrackRequest = planservice.PracticeTrackOptions

// PracticeTrack is the practice-track descriptor (aliased from the domain layer).
type PracticeTrack = planservice.PracticeTrack

// SongListResponse wraps the song catalog.
type SongListResponse struct {
	Songs []models.Song `json:"songs" validate:"required"`
	Total int           `json:"total" example:"42" validate:"required"`
}

// MusicianListResponse wraps the musician roster.
type MusicianListResponse struct {
	Musicians []models.Musician `json:"musicians" validate:"required"`
	Total     int               `json:"total" validate:"required"`
}

// SetListListResponse wraps all set lists.
type SetListListResponse struct {
	SetLists []models.SetList `json:"set_lists" validate:"required"`
	Total    int              `json:"total" validate:"required"`
}

// RehearsalListResponse wraps all rehearsals.
type RehearsalListResponse struct {
	Rehearsals []models.Rehearsal `json:"rehearsals" validate:"required"`
	Total      int                `json:"total" validate:"required"`
}

// SearchResult is a single search hit in the API response.
type SearchResult = library.SearchResult

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"required"`
}
