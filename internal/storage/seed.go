package storage

import "github.com/misterclayt0n/repsheet/internal/models"

// SeedRoutines returns the default collection used on first run and whenever
// the stored collection cannot be read. Every call builds a fresh copy.
func SeedRoutines() []models.Routine {
	return []models.Routine{
		{
			ID:   "1",
			Name: "Full Body Routine",
			Exercises: []models.Exercise{
				{ID: "1", Name: "Bench Press", Sets: seedSets(4, 135)},
				{ID: "2", Name: "Squats", Sets: seedSets(3, 185)},
			},
		},
		{
			ID:   "2",
			Name: "Upper Body Routine",
			Exercises: []models.Exercise{
				// Bodyweight movements.
				{ID: "1", Name: "Pull Ups", Sets: seedSets(3, 0)},
				{ID: "2", Name: "Push Ups", Sets: seedSets(3, 0)},
			},
		},
	}
}

func seedSets(n int, target float64) []models.Set {
	sets := make([]models.Set, n)
	for i := range sets {
		sets[i] = models.Set{SetNumber: i + 1, TargetWeight: target}
	}
	return sets
}
