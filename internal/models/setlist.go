package models

import "time"

// SetListStatus is the lifecycle state of a set list.
type SetListStatus string

// SetListStatus values. A set list advances draft -> approved -> archived
// under external control and is immutable once archived.
const (
	SetListDraft    SetListStatus = "draft"
	SetListApproved SetListStatus = "approved"
	SetListArchived SetListStatus = "archived"
)

// SetListSong is one entry of a set list. It references a catalog Song by
// id and carries a possibly transposed key distinct from the song's
// default key.
type SetListSong struct {
	SongID string `json:"song_id" yaml:"song_id"`
	// Order is 1-based and contiguous within a set list.
	Order                    int    `json:"order" yaml:"order"`
	Key                      string `json:"key" yaml:"key"`
	TransitionNotes          string `json:"transition_notes,omitempty" yaml:"transition_notes,omitempty"`
	SpecialInstructions      string `json:"special_instructions,omitempty" yaml:"special_instructions,omitempty"`
	EstimatedDurationSeconds int    `json:"estimated_duration_seconds" yaml:"estimated_duration_seconds"`
}

// SetList is one planned or archived service program.
// KeyFlow and TempoFlow are parallel to Songs.
type SetList struct {
	ID                   string        `json:"id" yaml:"id"`
	Title                string        `json:"title" yaml:"title"`
	Date                 time.Time     `json:"date" yaml:"date"`
	ServiceType          ServiceType   `json:"service_type" yaml:"service_type"`
	Theme                string        `json:"theme,omitempty" yaml:"theme,omitempty"`
	Songs                []SetListSong `json:"songs" yaml:"songs"`
	TotalDurationSeconds int           `json:"total_duration_seconds" yaml:"total_duration_seconds"`
	KeyFlow              []string      `json:"key_flow" yaml:"key_flow"`
	TempoFlow            []Tempo       `json:"tempo_flow" yaml:"tempo_flow"`
	Status               SetListStatus `json:"status" yaml:"status"`
	CreatedBy            string        `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedAt            time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at" yaml:"updated_at"`
}
