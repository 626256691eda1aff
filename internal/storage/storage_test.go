package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/misterclayt0n/repsheet/internal/config"
	"github.com/misterclayt0n/repsheet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testKey = "workoutRoutines"

func TestLoad_EmptySlotMaterializesSeed(t *testing.T) {
	slot := NewMemorySlot()
	st := New(slot, testKey, nil)

	got, err := st.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(SeedRoutines(), got); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}

	raw, ok, err := slot.Get(testKey)
	require.NoError(t, err)
	require.True(t, ok, "seed should be written to the slot")

	stored, err := decodeRoutines([]byte(raw))
	require.NoError(t, err)
	if diff := cmp.Diff(SeedRoutines(), stored); diff != "" {
		t.Fatalf("stored seed mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyStringCountsAsAbsent(t *testing.T) {
	slot := NewMemorySlot()
	require.NoError(t, slot.Set(testKey, ""))

	got, err := New(slot, testKey, nil).Load()
	require.NoError(t, err)
	assert.Len(t, got, 2)

	raw, _, _ := slot.Get(testKey)
	assert.NotEmpty(t, raw)
}

func TestLoad_CorruptSlotIsLeftUntouched(t *testing.T) {
	cases := map[string]string{
		"invalid json":   `[{"id": "1", "name": `,
		"null":           `null`,
		"object":         `{"id": "1"}`,
		"bad timestamp":  `[{"id":"1","name":"A","exercises":[],"lastCompleted":"yesterday"}]`,
		"wrong set type": `[{"id":"1","name":"A","exercises":[{"id":"1","name":"B","sets":"four"}]}]`,
	}

	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			slot := NewMemorySlot()
			require.NoError(t, slot.Set(testKey, corrupt))

			got, err := New(slot, testKey, zap.New(core)).Load()
			require.NoError(t, err)
			if diff := cmp.Diff(SeedRoutines(), got); diff != "" {
				t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
			}

			raw, _, _ := slot.Get(testKey)
			assert.Equal(t, corrupt, raw)
			assert.Equal(t, 1, logs.Len())
		})
	}
}

func TestLastCompletedRoundTrip(t *testing.T) {
	slot := NewMemorySlot()
	st := New(slot, testKey, nil)

	done := time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.UTC)
	routines := []models.Routine{
		{ID: "a", Name: "Push", Exercises: []models.Exercise{}, LastCompleted: &done},
		{ID: "b", Name: "Pull", Exercises: []models.Exercise{}},
	}
	require.NoError(t, st.Save(routines))

	raw, _, _ := slot.Get(testKey)
	assert.Contains(t, raw, `"lastCompleted":"2024-05-06T07:08:09.123Z"`)

	got, err := st.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].LastCompleted)
	assert.True(t, done.Equal(*got[0].LastCompleted))
	assert.Nil(t, got[1].LastCompleted)
}

func TestLoad_ReadsExistingLayout(t *testing.T) {
	slot := NewMemorySlot()
	raw := `[{"id":"1","name":"Full Body Routine","exercises":[{"id":"1","name":"Bench Press",` +
		`"sets":[{"setNumber":1,"targetWeight":140,"reps":8,"completed":false}]}],` +
		`"lastCompleted":"2025-01-31T18:45:00.000Z"}]`
	require.NoError(t, slot.Set(testKey, raw))

	got, err := New(slot, testKey, nil).Load()
	require.NoError(t, err)
	require.Len(t, got, 1)

	set := got[0].Exercises[0].Sets[0]
	assert.Equal(t, 140.0, set.TargetWeight)
	require.NotNil(t, set.Reps)
	assert.Equal(t, 8, *set.Reps)
	assert.Nil(t, set.ActualWeight)
	assert.Equal(t, time.Date(2025, 1, 31, 18, 45, 0, 0, time.UTC), got[0].LastCompleted.UTC())
}

func TestSave_ReplacesWholeCollection(t *testing.T) {
	slot := NewMemorySlot()
	st := New(slot, testKey, nil)

	_, err := st.Load()
	require.NoError(t, err)

	require.NoError(t, st.Save([]models.Routine{{ID: "only", Name: "Only"}}))

	got, err := st.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "only", got[0].ID)
	assert.NotNil(t, got[0].Exercises)
}

func TestFileSlot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	slot := NewFileSlot(dir)

	_, ok, err := slot.Get(testKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Set(testKey, "[]"))
	require.NoError(t, slot.Set(testKey, `[{"id":"x"}]`))

	v, ok, err := slot.Get(testKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, v)
	assert.FileExists(t, filepath.Join(dir, testKey+".json"))

	assert.Error(t, slot.Set("../escape", "x"))
}

func TestSQLiteSlot(t *testing.T) {
	slot, err := OpenSQLiteSlot(":memory:")
	require.NoError(t, err)
	defer slot.Close()

	_, ok, err := slot.Get(testKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Set(testKey, "first"))
	require.NoError(t, slot.Set(testKey, "second"))

	v, ok, err := slot.Get(testKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestNewStorage_SQLitePersistsAcrossOpens(t *testing.T) {
	cfg := config.StorageConfig{
		Backend: config.BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "reps.db"),
		Slot:    testKey,
	}

	st, err := NewStorage(cfg, nil)
	require.NoError(t, err)
	_, err = st.Load()
	require.NoError(t, err)
	require.NoError(t, NewRepository(st, nil).UpdateRoutine(models.Routine{ID: "new", Name: "Legs"}))
	require.NoError(t, st.Close())

	st, err = NewStorage(cfg, nil)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.Load()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Legs", got[2].Name)
}

func TestNewStorage_UnknownBackend(t *testing.T) {
	_, err := NewStorage(config.StorageConfig{Backend: "floppy"}, nil)
	assert.Error(t, err)
}
