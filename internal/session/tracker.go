package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/misterclayt0n/repsheet/internal/models"
	"github.com/misterclayt0n/repsheet/internal/utils"
)

// DefaultReps is what every set starts at during a session, whatever was
// saved last time.
const (
	DefaultReps    = 10
	defaultRepsStr = "10"
)

var (
	ErrUnknownExercise = errors.New("unknown exercise")
	ErrUnknownSet      = errors.New("unknown set")
	ErrUnknownField    = errors.New("unknown field")
)

type Field string

const (
	FieldTarget Field = "target"
	FieldReps   Field = "reps"
)

// Key identifies one set within a routine.
type Key struct {
	ExerciseID string
	SetNumber  int
}

// Override is the unsaved, user-editable state of a set.
type Override struct {
	Done   bool
	Target string
	Reps   string
}

// DisplayState is derived on demand and never stored.
type DisplayState int

const (
	StateDefault DisplayState = iota
	StateEdited
	StateDone
)

func (s DisplayState) String() string {
	switch s {
	case StateDone:
		return "done"
	case StateEdited:
		return "edited"
	default:
		return "default"
	}
}

// InvalidOverrideError reports an override that cannot be committed as a number.
type InvalidOverrideError struct {
	Key   Key
	Field Field
	Value string
}

func (e *InvalidOverrideError) Error() string {
	return fmt.Sprintf("exercise %s set %d: %s %q is not a valid number",
		e.Key.ExerciseID, e.Key.SetNumber, e.Field, e.Value)
}

// Tracker holds one tracking session: a private copy of the routine plus an
// override per set. Nothing reaches the stored routine until Reconcile.
type Tracker struct {
	routine   models.Routine
	overrides map[Key]Override
	started   time.Time
	now       func() time.Time
}

// New seeds an override for every set of routine: not done, the current
// target weight, and DefaultReps.
func New(routine models.Routine) *Tracker {
	t := &Tracker{
		routine:   routine.Clone(),
		overrides: make(map[Key]Override),
		started:   time.Now().UTC().Truncate(time.Second),
		now:       time.Now,
	}
	for _, ex := range t.routine.Exercises {
		for _, set := range ex.Sets {
			t.overrides[Key{ex.ID, set.SetNumber}] = defaultOverride(set.TargetWeight)
		}
	}
	return t
}

func defaultOverride(target float64) Override {
	return Override{Done: false, Target: utils.FormatNumber(target), Reps: defaultRepsStr}
}

// SetClock replaces the time source used to stamp LastCompleted.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

func (t *Tracker) StartedAt() time.Time {
	return t.started
}

// Routine returns a copy of the routine as tracked so far, including added sets.
func (t *Tracker) Routine() models.Routine {
	return t.routine.Clone()
}

func (t *Tracker) Override(exerciseID string, setNumber int) (Override, bool) {
	o, ok := t.overrides[Key{exerciseID, setNumber}]
	return o, ok
}

// SetField stores value for the target or reps field. Editing a value always
// clears Done.
func (t *Tracker) SetField(exerciseID string, setNumber int, field Field, value string) error {
	key := Key{exerciseID, setNumber}
	o, ok := t.overrides[key]
	if !ok {
		return fmt.Errorf("%w: exercise %s set %d", ErrUnknownSet, exerciseID, setNumber)
	}

	switch field {
	case FieldTarget:
		o.Target = value
	case FieldReps:
		o.Reps = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	o.Done = false
	t.overrides[key] = o
	return nil
}

func (t *Tracker) SetDone(exerciseID string, setNumber int, checked bool) error {
	key := Key{exerciseID, setNumber}
	o, ok := t.overrides[key]
	if !ok {
		return fmt.Errorf("%w: exercise %s set %d", ErrUnknownSet, exerciseID, setNumber)
	}
	o.Done = checked
	t.overrides[key] = o
	return nil
}

// AddSet appends a set after the exercise's last one, copying its target
// weight (0 for an empty exercise), and returns it.
func (t *Tracker) AddSet(exerciseID string) (models.Set, error) {
	ex := t.routine.Exercise(exerciseID)
	if ex == nil {
		return models.Set{}, fmt.Errorf("%w: %s", ErrUnknownExercise, exerciseID)
	}

	set := models.Set{SetNumber: 1, Reps: models.IntPtr(DefaultReps)}
	if last := ex.LastSet(); last != nil {
		set.SetNumber = last.SetNumber + 1
		set.TargetWeight = last.TargetWeight
	}
	ex.Sets = append(ex.Sets, set)
	t.overrides[Key{exerciseID, set.SetNumber}] = defaultOverride(set.TargetWeight)
	return set.Clone(), nil
}

// TargetState tells how the target field should be shown.
func (t *Tracker) TargetState(exerciseID string, setNumber int) DisplayState {
	o, ok := t.overrides[Key{exerciseID, setNumber}]
	if !ok {
		return StateDefault
	}
	if o.Done {
		return StateDone
	}
	set := t.set(exerciseID, setNumber)
	if set != nil && o.Target == utils.FormatNumber(set.TargetWeight) {
		return StateDefault
	}
	return StateEdited
}

// RepsState tells how the reps field should be shown.
func (t *Tracker) RepsState(exerciseID string, setNumber int) DisplayState {
	o, ok := t.overrides[Key{exerciseID, setNumber}]
	if !ok {
		return StateDefault
	}
	if o.Done {
		return StateDone
	}
	if o.Reps == defaultRepsStr {
		return StateDefault
	}
	return StateEdited
}

func (t *Tracker) set(exerciseID string, setNumber int) *models.Set {
	ex := t.routine.Exercise(exerciseID)
	if ex == nil {
		return nil
	}
	for i := range ex.Sets {
		if ex.Sets[i].SetNumber == setNumber {
			return &ex.Sets[i]
		}
	}
	return nil
}

// Reconcile writes every override into its set, done or not, and stamps
// LastCompleted. The tracker itself is left unchanged. A value that is not a
// number, or reps that are not a whole number between 0 and MaxInt32, fails
// the whole reconcile so nothing unrepresentable is ever persisted.
func (t *Tracker) Reconcile() (models.Routine, error) {
	out := t.routine.Clone()
	for i := range out.Exercises {
		ex := &out.Exercises[i]
		for j := range ex.Sets {
			set := &ex.Sets[j]
			key := Key{ex.ID, set.SetNumber}
			o, ok := t.overrides[key]
			if !ok {
				continue
			}

			target, err := utils.ParseNumber(o.Target)
			if err != nil || math.IsNaN(target) || math.IsInf(target, 0) {
				return models.Routine{}, &InvalidOverrideError{Key: key, Field: FieldTarget, Value: o.Target}
			}
			reps, err := utils.ParseNumber(o.Reps)
			if err != nil || reps != math.Trunc(reps) || reps < 0 || reps > math.MaxInt32 {
				return models.Routine{}, &InvalidOverrideError{Key: key, Field: FieldReps, Value: o.Reps}
			}

			set.TargetWeight = target
			set.Reps = models.IntPtr(int(reps))
		}
	}

	now := t.now()
	out.LastCompleted = &now
	return out, nil
}

// ParseField accepts the field names used on the command line.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldTarget, FieldReps:
		return Field(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}
