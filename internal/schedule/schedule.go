// Package schedule matches required instruments against musician
// availability and skill for a service date.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/starford/cantor/internal/models"
)

// Assignment places one musician on one instrument.
type Assignment struct {
	Instrument string            `json:"instrument"`
	MusicianID string            `json:"musician_id"`
	Name       string            `json:"name"`
	SkillLevel models.SkillLevel `json:"skill_level"`
}

// Result is the outcome of one scheduling call. Conflicts and
// Suggestions are parallel narratives for instruments nobody could
// cover; an empty Assigned list with populated Conflicts is the normal
// "no match" path, not an error.
type Result struct {
	Date        time.Time    `json:"date"`
	Weekday     string       `json:"weekday"`
	Assigned    []Assignment `json:"assigned"`
	Conflicts   []string     `json:"conflicts"`
	Suggestions []string     `json:"suggestions"`
}

// Plan assigns the strongest available musician to each required
// instrument, processed independently and in the given order. For each
// instrument it keeps active musicians who play it and are available on
// the date's weekday, ranks them by skill (professional first, stable on
// ties), and takes the top one.
//
// A musician already assigned to one instrument stays in the pool for
// the next, so one person can end up covering several instruments in a
// single call. That mirrors how the planner has always behaved; see
// DESIGN.md for the reasoning on keeping it.
func Plan(date time.Time, instruments []string, musicians []models.Musician) Result {
	weekday := WeekdayName(date)
	res := Result{
		Date:        date,
		Weekday:     weekday,
		Assigned:    []Assignment{},
		Conflicts:   []string{},
		Suggestions: []string{},
	}

	for _, instrument := range instruments {
		var candidates []models.Musician
		for _, m := range musicians {
			if m.IsActive && m.Plays(instrument) && m.Availability[weekday] {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			res.Conflicts = append(res.Conflicts,
				fmt.Sprintf("no musician available for %s on %s", instrument, weekday))
			res.Suggestions = append(res.Suggestions,
				fmt.Sprintf("Consider recruiting a %s player or rescheduling the service", instrument))
			continue
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].SkillLevel.Rank() > candidates[j].SkillLevel.Rank()
		})
		top := candidates[0]
		res.Assigned = append(res.Assigned, Assignment{
			Instrument: instrument,
			MusicianID: top.ID,
			Name:       top.Name,
			SkillLevel: top.SkillLevel,
		})
	}

	return res
}
