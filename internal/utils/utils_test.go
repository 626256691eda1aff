package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "135", FormatNumber(135))
	assert.Equal(t, "62.5", FormatNumber(62.5))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestParseNumber(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		v, err := ParseNumber("  97.5 ")
		require.NoError(t, err)
		assert.Equal(t, 97.5, v)
	})

	t.Run("empty is zero", func(t *testing.T) {
		v, err := ParseNumber("")
		require.NoError(t, err)
		assert.Zero(t, v)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseNumber("heavy")
		assert.Error(t, err)
	})

	t.Run("exponent", func(t *testing.T) {
		v, err := ParseNumber("1e2")
		require.NoError(t, err)
		assert.Equal(t, 100.0, v)
	})
}

func TestParseDecimal_RejectsNonDecimal(t *testing.T) {
	for _, s := range []string{"", "NaN", "nan", "Inf", "-Infinity", "0x1p3", "1_000", "1e400", " 5"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseDecimal(s)
			assert.ErrorIs(t, err, ErrNotADecimal)
		})
	}

	v, err := ParseDecimal("-2.5")
	require.NoError(t, err)
	assert.Equal(t, -2.5, v)
}

func TestCalculateEpley1RM(t *testing.T) {
	assert.InDelta(t, 133.33, CalculateEpley1RM(100, 10), 0.01)
	assert.Zero(t, CalculateEpley1RM(100, 0))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 1, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01", FormatDate(ts, time.UTC))

	loc := LoadLocation("America/Sao_Paulo")
	assert.Equal(t, "2024-02-29", FormatDate(ts, loc))
	assert.Equal(t, time.Local, LoadLocation("Not/AZone"))
}
