package models

// SkillLevel classifies a musician's overall proficiency.
type SkillLevel string

// SkillLevel values, ordered weakest to strongest.
const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillProfessional SkillLevel = "professional"
)

// Rank returns the ordinal position of the skill level for ranking
// (professional > advanced > intermediate > beginner). Unknown values rank lowest.
func (s SkillLevel) Rank() int {
	switch s {
	case SkillProfessional:
		return 4
	case SkillAdvanced:
		return 3
	case SkillIntermediate:
		return 2
	case SkillBeginner:
		return 1
	default:
		return 0
	}
}

// MusicianPreferences captures what a musician prefers to play.
type MusicianPreferences struct {
	Genres             []Genre    `json:"genres,omitempty" yaml:"genres,omitempty"`
	Languages          []Language `json:"languages,omitempty" yaml:"languages,omitempty"`
	MaxSongsPerService int        `json:"max_songs_per_service,omitempty" yaml:"max_songs_per_service,omitempty"`
}

// Musician represents a person available to serve on a team.
//
// Availability is keyed by the seven lowercase English weekday names
// ("sunday" ... "saturday"); schedule.WeekdayName is the single place
// that derives those keys from a date.
type Musician struct {
	ID           string              `json:"id" yaml:"id"`
	Name         string              `json:"name" yaml:"name"`
	Email        string              `json:"email,omitempty" yaml:"email,omitempty"`
	Phone        string              `json:"phone,omitempty" yaml:"phone,omitempty"`
	Instruments  []string            `json:"instruments,omitempty" yaml:"instruments,omitempty"`
	VoiceParts   []string            `json:"voice_parts,omitempty" yaml:"voice_parts,omitempty"`
	SkillLevel   SkillLevel          `json:"skill_level" yaml:"skill_level"`
	Availability map[string]bool     `json:"availability,omitempty" yaml:"availability,omitempty"`
	Preferences  MusicianPreferences `json:"preferences,omitempty" yaml:"preferences,omitempty"`
	IsActive     bool                `json:"is_active" yaml:"is_active"`
}

// Plays reports whether the musician plays the given instrument.
func (m Musician) Plays(instrument string) bool {
	for _, in := range m.Instruments {
		if in == instrument {
			return true
		}
	}
	return false
}
