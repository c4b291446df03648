// Package scoring implements the additive point scoring of songs against
// a recommendation request.
package scoring

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/cantor/internal/models"
)

// Weights holds the point values of every scoring rule. The defaults are
// load-bearing: relative ordering of recommendations depends on them, so
// deployments that tune them should do so deliberately.
type Weights struct {
	// Theme word found in one of the song's themes / the title / the lyrics.
	ThemeTag    int `yaml:"theme_tag"`
	ThemeTitle  int `yaml:"theme_title"`
	ThemeLyrics int `yaml:"theme_lyrics"`
	// Mood keyword found in one of the song's themes.
	MoodTheme int `yaml:"mood_theme"`
	// Tempo agrees with the requested mood (energetic/fast, peaceful/slow, reflective/slow).
	MoodTempo int `yaml:"mood_tempo"`
	// Genre suits the service type; hymns at special events score lower.
	ServiceGenre     int `yaml:"service_genre"`
	ServiceGenreHymn int `yaml:"service_genre_hymn"`
	// Popularity boost per tag, capped.
	TagBoost    int `yaml:"tag_boost"`
	TagBoostCap int `yaml:"tag_boost_cap"`
}

// DefaultWeights returns the stock point values.
func DefaultWeights() Weights {
	return Weights{
		ThemeTag:         25,
		ThemeTitle:       15,
		ThemeLyrics:      10,
		MoodTheme:        20,
		MoodTempo:        15,
		ServiceGenre:     10,
		ServiceGenreHymn: 5,
		TagBoost:         2,
		TagBoostCap:      10,
	}
}

// Validate rejects negative point values.
func (w Weights) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.ThemeTag, validation.Min(0)),
		validation.Field(&w.ThemeTitle, validation.Min(0)),
		validation.Field(&w.ThemeLyrics, validation.Min(0)),
		validation.Field(&w.MoodTheme, validation.Min(0)),
		validation.Field(&w.MoodTempo, validation.Min(0)),
		validation.Field(&w.ServiceGenre, validation.Min(0)),
		validation.Field(&w.ServiceGenreHymn, validation.Min(0)),
		validation.Field(&w.TagBoost, validation.Min(0)),
		validation.Field(&w.TagBoostCap, validation.Min(0)),
	)
}

// moodKeywords maps each mood to the theme keywords that signal it.
var moodKeywords = map[models.Mood][]string{
	models.MoodCelebratory: {"praise", "joy", "celebration", "victory"},
	models.MoodReflective:  {"meditation", "contemplation", "quiet", "reflection"},
	models.MoodWorshipful:  {"worship", "adoration", "reverence", "holy"},
	models.MoodEnergetic:   {"praise", "upbeat", "joyful", "celebration"},
	models.MoodPeaceful:    {"peace", "calm", "rest", "comfort"},
}

// Score rates how well song matches the criteria. Pure and deterministic;
// missing criteria fields simply contribute no points. Hard filtering
// (language, difficulty, exclusions) is the caller's job, not Score's.
func Score(song models.Song, c models.SongCriteria, w Weights) int {
	score := 0

	if c.Theme != "" {
		title := strings.ToLower(song.Title)
		lyrics := strings.ToLower(song.Lyrics)
		for _, word := range strings.Fields(strings.ToLower(c.Theme)) {
			if themesContain(song.Themes, word) {
				score += w.ThemeTag
			}
			if strings.Contains(title, word) {
				score += w.ThemeTitle
			}
			if lyrics != "" && strings.Contains(lyrics, word) {
				score += w.ThemeLyrics
			}
		}
	}

	if c.Mood != "" {
		for _, kw := range moodKeywords[c.Mood] {
			if themesContain(song.Themes, kw) {
				score += w.MoodTheme
			}
		}
		switch {
		case c.Mood == models.MoodEnergetic && song.Tempo == models.TempoFast:
			score += w.MoodTempo
		case c.Mood == models.MoodPeaceful && song.Tempo == models.TempoSlow:
			score += w.MoodTempo
		case c.Mood == models.MoodReflective && song.Tempo == models.TempoSlow:
			score += w.MoodTempo
		}
	}

	switch {
	case c.ServiceType == models.ServiceSundayMorning && song.Genre == models.GenreContemporary:
		score += w.ServiceGenre
	case c.ServiceType == models.ServiceSundayEvening && song.Genre == models.GenreWorship:
		score += w.ServiceGenre
	case c.ServiceType == models.ServiceSpecialEvent && song.Genre == models.GenreHymn:
		score += w.ServiceGenreHymn
	}

	boost := len(song.Tags) * w.TagBoost
	if boost > w.TagBoostCap {
		boost = w.TagBoostCap
	}
	score += boost

	return score
}

// themesContain reports whether any theme contains word as a
// case-insensitive substring.
func themesContain(themes []string, word string) bool {
	for _, th := range themes {
		if strings.Contains(strings.ToLower(th), word) {
			return true
		}
	}
	return false
}
