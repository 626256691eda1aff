package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/misterclayt0n/repsheet/internal/config"
	"github.com/misterclayt0n/repsheet/internal/models"
	"go.uber.org/zap"
)

// lastCompletedLayout matches the ISO strings the collection has always been
// written with (UTC, millisecond precision).
const lastCompletedLayout = "2006-01-02T15:04:05.000Z07:00"

// Storage reads and writes the whole routine collection under one slot key.
type Storage struct {
	slot   Slot
	key    string
	log    *zap.Logger
	closer io.Closer
}

// New wraps an already opened slot.
func New(slot Slot, key string, log *zap.Logger) *Storage {
	if key == "" {
		key = config.DefaultSlot
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Storage{slot: slot, key: key, log: log}
	if c, ok := slot.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// NewStorage opens the slot backend selected by the configuration.
func NewStorage(cfg config.StorageConfig, log *zap.Logger) (*Storage, error) {
	var slot Slot
	switch cfg.Backend {
	case config.BackendFile:
		slot = NewFileSlot(cfg.Path)
	case config.BackendSQLite:
		sq, err := OpenSQLiteSlot(cfg.Path)
		if err != nil {
			return nil, err
		}
		slot = sq
	case config.BackendLibSQL:
		sq, err := OpenLibSQLSlot(cfg.URL, cfg.AuthToken)
		if err != nil {
			return nil, err
		}
		slot = sq
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if log != nil {
		log.Debug("storage opened", zap.String("backend", cfg.Backend), zap.String("slot", cfg.Slot))
	}
	return New(slot, cfg.Slot, log), nil
}

func (s *Storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Load returns the stored collection. The first load of an empty slot writes
// the seed collection. A stored value that cannot be decoded is logged and
// replaced by the seed collection in memory only; the slot is left as is.
// Errors are returned only when the slot itself cannot be read or written.
func (s *Storage) Load() ([]models.Routine, error) {
	raw, ok, err := s.slot.Get(s.key)
	if err != nil {
		return nil, err
	}

	if !ok || raw == "" {
		seed := SeedRoutines()
		if err := s.Save(seed); err != nil {
			return seed, fmt.Errorf("Failed to write seed routines: %w", err)
		}
		s.log.Info("seeded routine collection", zap.String("slot", s.key), zap.Int("routines", len(seed)))
		return seed, nil
	}

	routines, err := decodeRoutines([]byte(raw))
	if err != nil {
		s.log.Warn("error parsing stored routines, using seed data",
			zap.String("slot", s.key), zap.Error(err))
		return SeedRoutines(), nil
	}
	return routines, nil
}

// Save overwrites the slot with the whole collection.
func (s *Storage) Save(routines []models.Routine) error {
	data, err := encodeRoutines(routines)
	if err != nil {
		return fmt.Errorf("Failed to encode routines: %w", err)
	}
	if err := s.slot.Set(s.key, string(data)); err != nil {
		return err
	}
	s.log.Debug("saved routine collection", zap.String("slot", s.key), zap.Int("routines", len(routines)))
	return nil
}

// routineRecord is the stored shape of a routine. lastCompleted travels as an
// ISO string and is turned back into a time on load.
type routineRecord struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Exercises     []models.Exercise `json:"exercises"`
	LastCompleted *string           `json:"lastCompleted,omitempty"`
}

var errNullCollection = errors.New("stored collection is null")

func encodeRoutines(routines []models.Routine) ([]byte, error) {
	records := make([]routineRecord, len(routines))
	for i, r := range routines {
		records[i] = routineRecord{ID: r.ID, Name: r.Name, Exercises: r.Exercises}
		if r.Exercises == nil {
			records[i].Exercises = []models.Exercise{}
		}
		if r.LastCompleted != nil {
			ts := r.LastCompleted.UTC().Format(lastCompletedLayout)
			records[i].LastCompleted = &ts
		}
	}
	return json.Marshal(records)
}

func decodeRoutines(data []byte) ([]models.Routine, error) {
	var records []routineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errNullCollection
	}

	routines := make([]models.Routine, len(records))
	for i, rec := range records {
		routines[i] = models.Routine{ID: rec.ID, Name: rec.Name, Exercises: rec.Exercises}
		if rec.LastCompleted != nil && *rec.LastCompleted != "" {
			t, err := time.Parse(time.RFC3339Nano, *rec.LastCompleted)
			if err != nil {
				return nil, fmt.Errorf("routine %s: lastCompleted: %w", rec.ID, err)
			}
			routines[i].LastCompleted = &t
		}
	}
	return routines, nil
}
