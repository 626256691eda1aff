package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/repsheet/internal/models"
)

const stateFile = "current_session.toml"

// Store keeps the in-progress session between CLI invocations. The file is
// scratch space only; routines are written through the repository on save.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.Dir, stateFile)
}

func (s *Store) Exists() bool {
	_, err := os.Stat(s.path())
	return !os.IsNotExist(err)
}

// Save overwrites the session file with the tracker's current state.
func (s *Store) Save(t *Tracker) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(s.path())
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(t.Snapshot())
}

func (s *Store) Load() (*Tracker, error) {
	var state models.SessionState
	if _, err := toml.DecodeFile(s.path(), &state); err != nil {
		return nil, err
	}
	return FromSnapshot(state)
}

func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Snapshot captures the tracker in its serializable form. Overrides are
// ordered by routine position so the file diffs cleanly.
func (t *Tracker) Snapshot() models.SessionState {
	state := models.SessionState{
		RoutineID: t.routine.ID,
		StartTime: t.started,
		Routine:   t.routine.Clone(),
	}

	order := make(map[Key]int, len(t.overrides))
	n := 0
	for _, ex := range t.routine.Exercises {
		for _, set := range ex.Sets {
			order[Key{ex.ID, set.SetNumber}] = n
			n++
		}
	}

	for key, o := range t.overrides {
		state.Overrides = append(state.Overrides, models.OverrideRecord{
			ExerciseID: key.ExerciseID,
			SetNumber:  key.SetNumber,
			Done:       o.Done,
			Target:     o.Target,
			Reps:       o.Reps,
		})
	}
	sort.Slice(state.Overrides, func(i, j int) bool {
		a := Key{state.Overrides[i].ExerciseID, state.Overrides[i].SetNumber}
		b := Key{state.Overrides[j].ExerciseID, state.Overrides[j].SetNumber}
		return order[a] < order[b]
	})
	return state
}

// FromSnapshot rebuilds a tracker. Sets without a recorded override get the
// defaults a fresh session would give them.
func FromSnapshot(state models.SessionState) (*Tracker, error) {
	if state.Routine.ID == "" {
		return nil, fmt.Errorf("session file has no routine")
	}

	t := New(state.Routine)
	if !state.StartTime.IsZero() {
		t.started = state.StartTime
	}
	for _, rec := range state.Overrides {
		key := Key{rec.ExerciseID, rec.SetNumber}
		if _, ok := t.overrides[key]; !ok {
			return nil, fmt.Errorf("%w: exercise %s set %d", ErrUnknownSet, rec.ExerciseID, rec.SetNumber)
		}
		t.overrides[key] = Override{Done: rec.Done, Target: rec.Target, Reps: rec.Reps}
	}
	return t, nil
}
