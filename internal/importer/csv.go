package importer

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/misterclayt0n/repsheet/internal/models"
	"github.com/misterclayt0n/repsheet/internal/utils"
)

const (
	ColRoutineName  = "routine name"
	ColExerciseName = "exercise name"
	ColSetNumber    = "set number"
	ColTargetWeight = "target weight"
	ColReps         = "reps"
	ColExerciseID   = "exercise id"

	// FallbackRoutineName is used when no row names the routine.
	FallbackRoutineName = "Imported Routine"
)

var requiredColumns = []string{ColRoutineName, ColExerciseName, ColSetNumber, ColTargetWeight, ColReps}

// ErrNotEnoughRows is returned when the text has no data row after the header.
var ErrNotEnoughRows = errors.New("CSV must contain a header row and at least one data row")

// MissingColumnsError lists the required header columns that were not found.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("CSV is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// newID is swapped in tests that need stable identifiers.
var newID = func() string {
	return uuid.New().String()
}

// ParseCSVFile reads path and parses it with ParseCSV.
func ParseCSVFile(path string) (*models.Routine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseCSV(string(data))
}

// ParseCSV turns comma separated text into a single routine. The header is
// matched case-insensitively; rows belong to exercises keyed by "Exercise ID"
// when that column is present and filled, by exercise name otherwise. Rows
// that are too short or carry non-numeric set data are dropped.
func ParseCSV(text string) (*models.Routine, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrNotEnoughRows
	}

	header := splitRow(lines[0])
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	idCol, hasIDCol := index[ColExerciseID]

	var (
		routineName string
		exercises   []*models.Exercise
		byKey       = make(map[string]*models.Exercise)
	)

	for _, line := range lines[1:] {
		fields := splitRow(line)
		if len(fields) < len(header) {
			continue
		}

		setNumber, err := strconv.Atoi(fields[index[ColSetNumber]])
		if err != nil {
			continue
		}
		target, err := utils.ParseDecimal(fields[index[ColTargetWeight]])
		if err != nil {
			continue
		}
		reps, err := strconv.Atoi(fields[index[ColReps]])
		if err != nil {
			continue
		}

		if routineName == "" {
			routineName = fields[index[ColRoutineName]]
		}

		name := fields[index[ColExerciseName]]
		key := name
		if hasIDCol && fields[idCol] != "" {
			key = fields[idCol]
		}

		ex, ok := byKey[key]
		if !ok {
			ex = &models.Exercise{ID: newID(), Name: name, Sets: []models.Set{}}
			byKey[key] = ex
			exercises = append(exercises, ex)
		}
		ex.Sets = append(ex.Sets, models.Set{
			SetNumber:    setNumber,
			TargetWeight: target,
			Reps:         models.IntPtr(reps),
		})
	}

	if routineName == "" {
		routineName = FallbackRoutineName
	}

	routine := &models.Routine{
		ID:        newID(),
		Name:      routineName,
		Exercises: make([]models.Exercise, 0, len(exercises)),
	}
	for _, ex := range exercises {
		sort.SliceStable(ex.Sets, func(i, j int) bool {
			return ex.Sets[i].SetNumber < ex.Sets[j].SetNumber
		})
		routine.Exercises = append(routine.Exercises, *ex)
	}
	return routine, nil
}

func splitRow(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
