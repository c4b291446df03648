// Package recommend ranks catalog songs against a recommendation request.
package recommend

import (
	"sort"

	"github.com/starford/cantor/internal/models"
	"github.com/starford/cantor/internal/scoring"
)

// MaxResults caps how many songs a single recommendation returns.
const MaxResults = 20

// Recommend filters songs by the criteria's hard constraints, scores the
// survivors, and returns them ordered by descending score. The sort is
// stable, so ties keep catalog order. An empty result is a valid answer,
// not an error.
func Recommend(songs []models.Song, c models.SongCriteria, w scoring.Weights) []models.Song {
	eligible := make([]models.Song, 0, len(songs))
	for _, s := range songs {
		if c.Language != "" && s.Language != c.Language {
			continue
		}
		if c.Difficulty != "" && s.Difficulty != c.Difficulty {
			continue
		}
		if c.Excluded(s.ID) {
			continue
		}
		eligible = append(eligible, s)
	}

	scores := make(map[string]int, len(eligible))
	for _, s := range eligible {
		scores[s.ID] = scoring.Score(s, c, w)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return scores[eligible[i].ID] > scores[eligible[j].ID]
	})

	if len(eligible) > MaxResults {
		eligible = eligible[:MaxResults]
	}
	return eligible
}
