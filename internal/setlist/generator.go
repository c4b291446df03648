// Package setlist assembles draft service programs from the catalog.
package setlist

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/starford/cantor/internal/apperr"
	"github.com/starford/cantor/internal/catalog"
	"github.com/starford/cantor/internal/keyflow"
	"github.com/starford/cantor/internal/models"
	"github.com/starford/cantor/internal/recommend"
	"github.com/starford/cantor/internal/scoring"
)

// CreatedBy marks set lists produced by the generator.
const CreatedBy = "AI Assistant"

// minutesPerSong is the heuristic used to derive a song budget from a
// target duration when the caller does not set MaxSongs explicitly.
const minutesPerSong = 4

// GenerateConfig describes one set list generation request.
type GenerateConfig struct {
	Title           string             `json:"title"`
	Date            time.Time          `json:"date"`
	ServiceType     models.ServiceType `json:"service_type"`
	Theme           string             `json:"theme,omitempty"`
	DurationMinutes int                `json:"duration_minutes"`
	Language        models.Language    `json:"language,omitempty"`
	IncludeHymns    bool               `json:"include_hymns,omitempty"`
	MaxSongs        int                `json:"max_songs,omitempty"`
	KeyPreferences  []string           `json:"key_preferences,omitempty"`
}

// Validate rejects configs with a blank title before the catalog is touched.
func (c GenerateConfig) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.By(notBlank)),
		validation.Field(&c.DurationMinutes, validation.Min(0)),
		validation.Field(&c.MaxSongs, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	return nil
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}

// songBudget returns the maximum number of songs for the config:
// MaxSongs when set, otherwise roughly one song per four minutes.
func (c GenerateConfig) songBudget() int {
	if c.MaxSongs > 0 {
		return c.MaxSongs
	}
	return c.DurationMinutes / minutesPerSong
}

// Generator builds draft set lists from one catalog store.
type Generator struct {
	store   *catalog.Store
	weights scoring.Weights

	// Overridable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewGenerator creates a generator over the given store with the given
// scoring weights.
func NewGenerator(store *catalog.Store, weights scoring.Weights) *Generator {
	return &Generator{
		store:   store,
		weights: weights,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Generate assembles a draft set list: an energetic opener, up to three
// worshipful middle songs, and a celebratory closer, then smooths the
// key flow. An empty catalog (or impossible filters) produces an empty
// draft, not an error.
//
// The song pool is snapshotted once at the start, so a concurrent
// catalog reload cannot leave different slots computed against different
// catalog states.
func (g *Generator) Generate(cfg GenerateConfig) (*models.SetList, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := g.store.Songs()
	budget := cfg.songBudget()

	var picked []models.Song
	exclude := make([]string, 0, budget)

	slotCriteria := func(mood models.Mood) models.SongCriteria {
		return models.SongCriteria{
			Theme:          cfg.Theme,
			Mood:           mood,
			ServiceType:    cfg.ServiceType,
			Language:       cfg.Language,
			ExcludeSongIDs: append([]string(nil), exclude...),
		}
	}
	take := func(song models.Song) {
		picked = append(picked, song)
		exclude = append(exclude, song.ID)
	}

	// Opening slot: the strongest energetic match.
	if budget > 0 {
		if recs := recommend.Recommend(pool, slotCriteria(models.MoodEnergetic), g.weights); len(recs) > 0 {
			take(recs[0])
		}
	}

	// Worship slots: up to three, always reserving one slot for the closer.
	if count := min(3, budget-len(picked)-1); count > 0 {
		recs := recommend.Recommend(pool, slotCriteria(models.MoodWorshipful), g.weights)
		for i := 0; i < len(recs) && i < count; i++ {
			take(recs[i])
		}
	}

	// Closing slot: the strongest celebratory match, if there is room.
	if len(picked) < budget {
		if recs := recommend.Recommend(pool, slotCriteria(models.MoodCelebratory), g.weights); len(recs) > 0 {
			take(recs[0])
		}
	}

	entries := make([]models.SetListSong, len(picked))
	for i, song := range picked {
		entries[i] = models.SetListSong{
			SongID:                   song.ID,
			Order:                    i + 1,
			Key:                      song.Key,
			EstimatedDurationSeconds: song.DurationSeconds,
		}
	}

	keyflow.Optimize(entries)

	total := 0
	keyFlow := make([]string, len(entries))
	tempoFlow := make([]models.Tempo, len(picked))
	for i, e := range entries {
		total += e.EstimatedDurationSeconds
		keyFlow[i] = e.Key
		tempoFlow[i] = picked[i].Tempo
	}

	now := g.now()
	return &models.SetList{
		ID:                   g.newID(),
		Title:                cfg.Title,
		Date:                 cfg.Date,
		ServiceType:          cfg.ServiceType,
		Theme:                cfg.Theme,
		Songs:                entries,
		TotalDurationSeconds: total,
		KeyFlow:              keyFlow,
		TempoFlow:            tempoFlow,
		Status:               models.SetListDraft,
		CreatedBy:            CreatedBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}
