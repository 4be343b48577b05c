package leave

import (
	"time"
)

const (
	daysPerWeek   = 7
	weeksPerMonth = 6

	MinCalendarYear = 1970
	MaxCalendarYear = 2100
)

// CalendarCell is one day of the monthly leave grid.
type CalendarCell struct {
	Date           string  `json:"date"`
	IsCurrentMonth bool    `json:"is_current_month"`
	LeaveKind      *Kind   `json:"leave_kind"`
	Label          *string `json:"label"`
	Shading        Shading `json:"shading"`
	Note           *string `json:"note"`
}

// ValidateYearMonth checks the calendar request range.
func ValidateYearMonth(year, month int) error {
	if year < MinCalendarYear || year > MaxCalendarYear {
		return ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// GridRange returns the first and last civil dates shown by the grid of year/month.
// The grid starts on the Sunday on or before the 1st and always spans 6 weeks.
func GridRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := start.AddDate(0, 0, daysPerWeek*weeksPerMonth-1)
	return start, end
}

// BuildMonthMatrix lays entries out on a Sunday-first 6x7 grid for the month.
// A full-day entry replaces a half-day one on the same date; otherwise the first entry seen wins.
func BuildMonthMatrix(year, month int, entries []Day) ([][]CalendarCell, error) {
	if err := ValidateYearMonth(year, month); err != nil {
		return nil, err
	}

	byDate := make(map[string]Day, len(entries))
	for _, entry := range entries {
		key := entry.DateKey()
		prev, seen := byDate[key]
		if !seen || (!prev.IsFullDay && entry.IsFullDay) {
			byDate[key] = entry
		}
	}

	start, _ := GridRange(year, month)
	matrix := make([][]CalendarCell, weeksPerMonth)
	cursor := start
	for w := 0; w < weeksPerMonth; w++ {
		week := make([]CalendarCell, daysPerWeek)
		for d := 0; d < daysPerWeek; d++ {
			key := cursor.Format("2006-01-02")
			cell := CalendarCell{
				Date:           key,
				IsCurrentMonth: int(cursor.Month()) == month,
				Shading:        ShadingNone,
			}
			if entry, ok := byDate[key]; ok {
				kind := entry.Kind
				cell.LeaveKind = &kind
				if label := kind.Label(); label != "" {
					cell.Label = &label
				}
				cell.Shading = ShadingHalf
				if entry.IsFullDay {
					cell.Shading = ShadingFull
				}
				cell.Note = entry.Note
			}
			week[d] = cell
			cursor = cursor.AddDate(0, 0, 1)
		}
		matrix[w] = week
	}

	return matrix, nil
}

// ForDate picks the entry that governs dateKey, preferring full-day entries.
// The second return value is false when the user has no leave that day.
func ForDate(entries []Day, dateKey string) (Day, bool) {
	var (
		found Day
		ok    bool
	)
	for _, entry := range entries {
		if entry.DateKey() != dateKey {
			continue
		}
		if !ok || (!found.IsFullDay && entry.IsFullDay) {
			found, ok = entry, true
		}
	}
	return found, ok
}
