package models

import "time"

// SessionState is the on-disk snapshot of an in-progress tracking session.
type SessionState struct {
	RoutineID string           `toml:"routine_id"`
	StartTime time.Time        `toml:"start_time"`
	Routine   Routine          `toml:"routine"`
	Overrides []OverrideRecord `toml:"override"`
}

type OverrideRecord struct {
	ExerciseID string `toml:"exercise_id"`
	SetNumber  int    `toml:"set_number"`
	Done       bool   `toml:"done"`
	Target     string `toml:"target"`
	Reps       string `toml:"reps"`
}
