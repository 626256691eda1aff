package storage

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/repsheet/internal/models"
	"go.uber.org/zap"
)

var ErrRoutineNotFound = errors.New("routine not found")

// RoutineStore loads and saves the whole routine collection.
type RoutineStore interface {
	Load() ([]models.Routine, error)
	Save(routines []models.Routine) error
}

// Repository applies upsert and delete semantics over a RoutineStore. Every
// mutation is a full load-modify-save cycle, so two processes writing at the
// same time will lose one of the writes.
type Repository struct {
	store RoutineStore
	log   *zap.Logger
}

func NewRepository(store RoutineStore, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{store: store, log: log}
}

func (r *Repository) Routines() ([]models.Routine, error) {
	return r.store.Load()
}

func (r *Repository) Routine(id string) (*models.Routine, error) {
	routines, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range routines {
		if routines[i].ID == id {
			return &routines[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRoutineNotFound, id)
}

// UpdateRoutine replaces the stored routine with the same ID, keeping its
// position, or appends routine when the ID is new.
func (r *Repository) UpdateRoutine(routine models.Routine) error {
	routines, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("Failed to load routines: %w", err)
	}

	found := false
	for i := range routines {
		if routines[i].ID == routine.ID {
			routines[i] = routine
			found = true
			break
		}
	}
	if !found {
		routines = append(routines, routine)
	}
	r.log.Debug("upserting routine",
		zap.String("id", routine.ID),
		zap.String("name", routine.Name),
		zap.Bool("replaced", found))

	if err := r.store.Save(routines); err != nil {
		return fmt.Errorf("Failed to save routines: %w", err)
	}
	return nil
}

// DeleteRoutine removes every routine with the given ID, persists the result
// and returns it. An unknown ID leaves the collection unchanged.
func (r *Repository) DeleteRoutine(id string) ([]models.Routine, error) {
	routines, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("Failed to load routines: %w", err)
	}

	kept := make([]models.Routine, 0, len(routines))
	for _, routine := range routines {
		if routine.ID != id {
			kept = append(kept, routine)
		}
	}
	r.log.Debug("deleting routine", zap.String("id", id), zap.Int("removed", len(routines)-len(kept)))

	if err := r.store.Save(kept); err != nil {
		return nil, fmt.Errorf("Failed to save routines: %w", err)
	}
	return kept, nil
}
