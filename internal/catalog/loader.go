package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/starford/cantor/internal/models"
	"github.com/starford/cantor/internal/schedule"
)

// Seed is the on-disk shape of a catalog directory. Each collection
// lives in its own YAML file so ministries can maintain them separately:
//
//	songs.yaml      -> songs:      [...]
//	musicians.yaml  -> musicians:  [...]
//	setlists.yaml   -> set_lists:  [...]
//	rehearsals.yaml -> rehearsals: [...]
//
// Missing files are fine; a collection simply starts empty.
type Seed struct {
	Songs      []models.Song      `yaml:"songs"`
	Musicians  []models.Musician  `yaml:"musicians"`
	SetLists   []models.SetList   `yaml:"set_lists"`
	Rehearsals []models.Rehearsal `yaml:"rehearsals"`
}

// seedFiles names the recognized catalog files in load order.
var seedFiles = []string{"songs.yaml", "musicians.yaml", "setlists.yaml", "rehearsals.yaml"}

// Load reads every recognized seed file under dir, validates the result,
// and returns the combined seed.
func Load(dir string) (*Seed, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: stat dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: not a directory: %s", dir)
	}

	var seed Seed
	for _, name := range seedFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", name, err)
		}
		var part Seed
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &part); err != nil {
			return nil, fmt.Errorf("catalog: parse %s: %w", name, err)
		}
		seed.Songs = append(seed.Songs, part.Songs...)
		seed.Musicians = append(seed.Musicians, part.Musicians...)
		seed.SetLists = append(seed.SetLists, part.SetLists...)
		seed.Rehearsals = append(seed.Rehearsals, part.Rehearsals...)
	}

	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// validate enforces the catalog invariants: positive song durations,
// availability maps keyed by the seven lowercase weekday names, and
// unique ids within each collection. Replace swaps collections in
// wholesale, so uniqueness has to hold here, not just in the Add paths.
func (s *Seed) validate() error {
	songIDs := make(map[string]struct{}, len(s.Songs))
	for _, song := range s.Songs {
		if song.ID == "" || song.Title == "" {
			return fmt.Errorf("catalog: song %q: id and title are required", song.ID)
		}
		if song.DurationSeconds <= 0 {
			return fmt.Errorf("catalog: song %q: duration must be positive", song.ID)
		}
		if _, ok := songIDs[song.ID]; ok {
			return fmt.Errorf("catalog: duplicate song id %q", song.ID)
		}
		songIDs[song.ID] = struct{}{}
	}
	musicianIDs := make(map[string]struct{}, len(s.Musicians))
	for _, m := range s.Musicians {
		if m.ID == "" || m.Name == "" {
			return fmt.Errorf("catalog: musician %q: id and name are required", m.ID)
		}
		for day := range m.Availability {
			if !schedule.ValidWeekday(day) {
				return fmt.Errorf("catalog: musician %q: invalid weekday %q in availability", m.ID, day)
			}
		}
		if _, ok := musicianIDs[m.ID]; ok {
			return fmt.Errorf("catalog: duplicate musician id %q", m.ID)
		}
		musicianIDs[m.ID] = struct{}{}
	}
	setListIDs := make(map[string]struct{}, len(s.SetLists))
	for _, sl := range s.SetLists {
		if _, ok := setListIDs[sl.ID]; ok {
			return fmt.Errorf("catalog: duplicate set list id %q", sl.ID)
		}
		setListIDs[sl.ID] = struct{}{}
	}
	return nil
}
