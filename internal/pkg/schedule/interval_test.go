package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkInterval(t *testing.T, day Weekday, start, end string) WeeklyInterval {
	t.Helper()
	s, err := ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := ParseTimeOfDay(end)
	require.NoError(t, err)
	iv, err := NewWeeklyInterval(day, s, e)
	require.NoError(t, err)
	return iv
}

func TestNewWeeklyInterval(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		iv := mkInterval(t, Monday, "09:00", "10:00")
		assert.Equal(t, 60, iv.Minutes())
		assert.Equal(t, "MONDAY 09:00-10:00", iv.String())
	})

	t.Run("start equal to end fails", func(t *testing.T) {
		_, err := NewWeeklyInterval(Monday, 600, 600)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("start after end fails", func(t *testing.T) {
		_, err := NewWeeklyInterval(Monday, 660, 600)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestWeeklyIntervalOverlaps(t *testing.T) {
	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		a := mkInterval(t, Monday, "09:00", "10:00")
		b := mkInterval(t, Monday, "10:00", "11:00")
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("partial overlap", func(t *testing.T) {
		a := mkInterval(t, Monday, "09:00", "10:00")
		b := mkInterval(t, Monday, "09:30", "10:30")
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("containment overlaps", func(t *testing.T) {
		outer := mkInterval(t, Friday, "08:00", "14:00")
		inner := mkInterval(t, Friday, "10:00", "11:00")
		assert.True(t, outer.Overlaps(inner))
	})

	t.Run("different days never interact", func(t *testing.T) {
		a := mkInterval(t, Monday, "09:00", "10:00")
		b := mkInterval(t, Tuesday, "09:00", "10:00")
		assert.False(t, a.Overlaps(b))
	})
}

func TestWeeklyIntervalIntersect(t *testing.T) {
	t.Run("common range", func(t *testing.T) {
		a := mkInterval(t, Monday, "08:00", "12:00")
		b := mkInterval(t, Monday, "09:00", "17:00")
		got, ok := a.Intersect(b)
		require.True(t, ok)
		assert.Equal(t, mkInterval(t, Monday, "09:00", "12:00"), got)
	})

	t.Run("touching ranges produce nothing", func(t *testing.T) {
		a := mkInterval(t, Monday, "08:00", "09:00")
		b := mkInterval(t, Monday, "09:00", "10:00")
		_, ok := a.Intersect(b)
		assert.False(t, ok)
	})

	t.Run("different days produce nothing", func(t *testing.T) {
		a := mkInterval(t, Monday, "08:00", "12:00")
		b := mkInterval(t, Tuesday, "08:00", "12:00")
		_, ok := a.Intersect(b)
		assert.False(t, ok)
	})
}

func TestWeeklyIntervalContains(t *testing.T) {
	iv := mkInterval(t, Wednesday, "09:00", "12:00")

	t.Run("time containment is half-open", func(t *testing.T) {
		assert.True(t, iv.ContainsTime(540))  // 09:00
		assert.True(t, iv.ContainsTime(719))  // 11:59
		assert.False(t, iv.ContainsTime(720)) // 12:00
		assert.False(t, iv.ContainsTime(539))
	})

	t.Run("range containment allows shared bounds", func(t *testing.T) {
		assert.True(t, iv.ContainsRange(mkInterval(t, Wednesday, "09:00", "12:00")))
		assert.True(t, iv.ContainsRange(mkInterval(t, Wednesday, "10:00", "11:00")))
		assert.False(t, iv.ContainsRange(mkInterval(t, Wednesday, "08:30", "11:00")))
		assert.False(t, iv.ContainsRange(mkInterval(t, Thursday, "10:00", "11:00")))
	})
}
