// Package models defines the domain types for Cantor.
package models

import "time"

// Tempo is a coarse tempo class used in set planning.
type Tempo string

// Tempo values.
const (
	TempoSlow   Tempo = "slow"
	TempoMedium Tempo = "medium"
	TempoFast   Tempo = "fast"
)

// Difficulty classifies how demanding a song or part is to perform.
type Difficulty string

// Difficulty values.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// Genre is the musical genre of a song.
type Genre string

// Genre values.
const (
	GenreHymn         Genre = "hymn"
	GenreContemporary Genre = "contemporary"
	GenreWorship      Genre = "worship"
	GenreGospel       Genre = "gospel"
	GenreTraditional  Genre = "traditional"
)

// Language is an ISO-639-1 style language code ("en", "es", ...).
type Language string

// ServiceType is the category of church gathering a set is planned for.
type ServiceType string

// ServiceType values.
const (
	ServiceSundayMorning ServiceType = "sunday_morning"
	ServiceSundayEvening ServiceType = "sunday_evening"
	ServiceWednesday     ServiceType = "wednesday"
	ServiceSpecialEvent  ServiceType = "special_event"
	ServiceRehearsal     ServiceType = "rehearsal"
)

// Mood is a coarse emotional-intent tag used to bias song selection.
type Mood string

// Mood values.
const (
	MoodCelebratory Mood = "celebratory"
	MoodReflective  Mood = "reflective"
	MoodWorshipful  Mood = "worshipful"
	MoodEnergetic   Mood = "energetic"
	MoodPeaceful    Mood = "peaceful"
)

// VoicePart describes one vocal line of a song.
type VoicePart struct {
	Name       string     `json:"name" yaml:"name"`
	RangeLow   string     `json:"range_low,omitempty" yaml:"range_low,omitempty"`
	RangeHigh  string     `json:"range_high,omitempty" yaml:"range_high,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// InstrumentPart describes one instrumental line of a song.
type InstrumentPart struct {
	Name       string     `json:"name" yaml:"name"`
	Type       string     `json:"type,omitempty" yaml:"type,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	IsRequired bool       `json:"is_required" yaml:"is_required"`
}

// Song is one catalog entry. Once loaded it is treated as immutable;
// edits happen by replacing the catalog seed files.
type Song struct {
	ID              string           `json:"id" yaml:"id"`
	Title           string           `json:"title" yaml:"title"`
	Artist          string           `json:"artist,omitempty" yaml:"artist,omitempty"`
	Composer        string           `json:"composer,omitempty" yaml:"composer,omitempty"`
	Arranger        string           `json:"arranger,omitempty" yaml:"arranger,omitempty"`
	Key             string           `json:"key" yaml:"key"`
	OriginalKey     string           `json:"original_key,omitempty" yaml:"original_key,omitempty"`
	Tempo           Tempo            `json:"tempo" yaml:"tempo"`
	BPM             int              `json:"bpm,omitempty" yaml:"bpm,omitempty"`
	TimeSignature   string           `json:"time_signature,omitempty" yaml:"time_signature,omitempty"`
	Difficulty      Difficulty       `json:"difficulty" yaml:"difficulty"`
	Genre           Genre            `json:"genre" yaml:"genre"`
	Language        Language         `json:"language" yaml:"language"`
	Themes          []string         `json:"themes,omitempty" yaml:"themes,omitempty"`
	Lyrics          string           `json:"lyrics,omitempty" yaml:"lyrics,omitempty"`
	Chords          string           `json:"chords,omitempty" yaml:"chords,omitempty"`
	DurationSeconds int              `json:"duration_seconds" yaml:"duration_seconds"`
	IsPublicDomain  bool             `json:"is_public_domain" yaml:"is_public_domain"`
	Tags            []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	VoiceParts      []VoicePart      `json:"voice_parts,omitempty" yaml:"voice_parts,omitempty"`
	Instruments     []InstrumentPart `json:"instruments,omitempty" yaml:"instruments,omitempty"`
	CreatedAt       time.Time        `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt       time.Time        `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// SongCriteria is a recommendation request. Every field is optional;
// a zero value means "no constraint".
type SongCriteria struct {
	Theme          string      `json:"theme,omitempty"`
	Mood           Mood        `json:"mood,omitempty"`
	ServiceType    ServiceType `json:"service_type,omitempty"`
	Language       Language    `json:"language,omitempty"`
	Difficulty     Difficulty  `json:"difficulty,omitempty"`
	ExcludeSongIDs []string    `json:"exclude_song_ids,omitempty"`
}

// Excluded reports whether the given song id is on the criteria's exclusion list.
func (c SongCriteria) Excluded(id string) bool {
	for _, ex := range c.ExcludeSongIDs {
		if ex == id {
			return true
		}
	}
	return false
}
