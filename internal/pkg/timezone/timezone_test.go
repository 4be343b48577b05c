package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := Load("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func TestDayOf_MiddayUTC(t *testing.T) {
	loc := seoul(t)
	ref := time.Date(2025, 9, 26, 3, 0, 0, 0, time.UTC)

	day := DayOf(ref, loc)

	assert.Equal(t, time.Date(2025, 9, 25, 15, 0, 0, 0, time.UTC), day.StartUTC)
	assert.Equal(t, time.Date(2025, 9, 26, 14, 59, 59, int(999*time.Millisecond), time.UTC), day.EndUTC)
	assert.Equal(t, "2025-09-26", day.DateKey)
}

func TestDayOf_LateUTCBelongsToNextLocalDay(t *testing.T) {
	loc := seoul(t)
	ref := time.Date(2025, 9, 25, 23, 0, 0, 0, time.UTC)

	day := DayOf(ref, loc)

	assert.Equal(t, "2025-09-26", day.DateKey)
	assert.True(t, day.Contains(ref))
	assert.Equal(t, time.Date(2025, 9, 25, 15, 0, 0, 0, time.UTC), day.StartUTC)
}

func TestDayOf_LengthAndContainment(t *testing.T) {
	loc := seoul(t)
	refs := []time.Time{
		time.Date(2024, 2, 29, 14, 59, 59, 0, time.UTC),
		time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, ref := range refs {
		day := DayOf(ref, loc)
		assert.Equal(t, 24*time.Hour-time.Millisecond, day.EndUTC.Sub(day.StartUTC), ref.String())
		assert.True(t, day.Contains(ref), ref.String())
	}
}

func TestDayOf_IgnoresInputLocation(t *testing.T) {
	loc := seoul(t)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	ref := time.Date(2025, 9, 26, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, DayOf(ref, loc), DayOf(ref.In(ny), loc))
}

func TestWeekStart(t *testing.T) {
	loc := seoul(t)
	// Sunday 2025-09-28 10:00 KST
	ref := time.Date(2025, 9, 28, 1, 0, 0, 0, time.UTC)

	start := WeekStart(ref, loc)

	assert.Equal(t, "2025-09-22", start.Format(DateLayout))
	assert.Equal(t, time.Monday, start.Weekday())
}

func TestLoad_DefaultAndInvalid(t *testing.T) {
	loc, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultZone, loc.String())

	_, err = Load("Mars/Olympus")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)
}
