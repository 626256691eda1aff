package models

import "time"

type Routine struct {
	ID            string     `json:"id" toml:"id" yaml:"id"`
	Name          string     `json:"name" toml:"name" yaml:"name"`
	Exercises     []Exercise `json:"exercises" toml:"exercise" yaml:"exercises"`
	LastCompleted *time.Time `json:"lastCompleted,omitempty" toml:"last_completed,omitempty" yaml:"last_completed,omitempty"`
}

type Exercise struct {
	ID   string `json:"id" toml:"id" yaml:"id"`
	Name string `json:"name" toml:"name" yaml:"name"`
	Sets []Set  `json:"sets" toml:"set" yaml:"sets"`
}

type Set struct {
	SetNumber    int      `json:"setNumber" toml:"set_number" yaml:"set_number"`
	TargetWeight float64  `json:"targetWeight" toml:"target_weight" yaml:"target_weight"`
	ActualWeight *float64 `json:"actualWeight,omitempty" toml:"actual_weight,omitempty" yaml:"actual_weight,omitempty"`
	Reps         *int     `json:"reps,omitempty" toml:"reps,omitempty" yaml:"reps,omitempty"`
	Completed    bool     `json:"completed" toml:"completed" yaml:"completed"`
}

// Exercise returns a pointer into r.Exercises, or nil when no exercise has the id.
func (r *Routine) Exercise(id string) *Exercise {
	for i := range r.Exercises {
		if r.Exercises[i].ID == id {
			return &r.Exercises[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the routine.
func (r Routine) Clone() Routine {
	out := r
	if r.LastCompleted != nil {
		t := *r.LastCompleted
		out.LastCompleted = &t
	}
	if r.Exercises != nil {
		out.Exercises = make([]Exercise, len(r.Exercises))
		for i, ex := range r.Exercises {
			out.Exercises[i] = ex.Clone()
		}
	}
	return out
}

func (e Exercise) Clone() Exercise {
	out := e
	if e.Sets != nil {
		out.Sets = make([]Set, len(e.Sets))
		for i, s := range e.Sets {
			out.Sets[i] = s.Clone()
		}
	}
	return out
}

func (s Set) Clone() Set {
	out := s
	if s.ActualWeight != nil {
		w := *s.ActualWeight
		out.ActualWeight = &w
	}
	if s.Reps != nil {
		r := *s.Reps
		out.Reps = &r
	}
	return out
}

// LastSet returns the final set of the exercise, or nil if it has none.
func (e *Exercise) LastSet() *Set {
	if len(e.Sets) == 0 {
		return nil
	}
	return &e.Sets[len(e.Sets)-1]
}

// IntPtr is a small helper for optional rep counts.
func IntPtr(v int) *int {
	return &v
}
