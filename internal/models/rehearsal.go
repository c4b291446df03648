package models

import "time"

// RehearsalStatus is the lifecycle state of a rehearsal.
type RehearsalStatus string

// RehearsalStatus values.
const (
	RehearsalScheduled  RehearsalStatus = "scheduled"
	RehearsalInProgress RehearsalStatus = "in_progress"
	RehearsalCompleted  RehearsalStatus = "completed"
	RehearsalCancelled  RehearsalStatus = "cancelled"
)

// RehearsalItemType classifies an agenda item.
type RehearsalItemType string

// RehearsalItemType values.
const (
	RehearsalItemSong       RehearsalItemType = "song"
	RehearsalItemPrayer     RehearsalItemType = "prayer"
	RehearsalItemBreak      RehearsalItemType = "break"
	RehearsalItemDiscussion RehearsalItemType = "discussion"
)

// RehearsalItem is one agenda entry of a rehearsal.
type RehearsalItem struct {
	Type            RehearsalItemType `json:"type" yaml:"type"`
	SongID          string            `json:"song_id,omitempty" yaml:"song_id,omitempty"`
	Title           string            `json:"title" yaml:"title"`
	DurationMinutes int               `json:"duration_minutes" yaml:"duration_minutes"`
	IsCompleted     bool              `json:"is_completed" yaml:"is_completed"`
}

// Rehearsal is a scheduled practice session tied to one set list.
// SetListID is a reference, not ownership; the set list lives independently.
type Rehearsal struct {
	ID        string          `json:"id" yaml:"id"`
	Title     string          `json:"title" yaml:"title"`
	Date      time.Time       `json:"date" yaml:"date"`
	StartTime string          `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string          `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Location  string          `json:"location,omitempty" yaml:"location,omitempty"`
	SetListID string          `json:"set_list_id,omitempty" yaml:"set_list_id,omitempty"`
	Attendees []string        `json:"attendees,omitempty" yaml:"attendees,omitempty"`
	Agenda    []RehearsalItem `json:"agenda,omitempty" yaml:"agenda,omitempty"`
	Status    RehearsalStatus `json:"status" yaml:"status"`
}
