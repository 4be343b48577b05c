package timezone

import (
	"fmt"
	"time"

	// Embed the IANA database so zones resolve on hosts without zoneinfo.
	_ "time/tzdata"
)

const (
	// DefaultZone is used when APP_TIMEZONE is not set.
	DefaultZone = "Asia/Seoul"

	// DateLayout is the civil date key format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
)

// Clock returns the current instant. Services and handlers take one instead of
// calling time.Now so tests can pin the reference time.
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// DayBoundary is one calendar day of a configured zone expressed in UTC.
type DayBoundary struct {
	StartUTC time.Time
	EndUTC   time.Time
	DateKey  string
}

// Contains reports whether t falls inside the day, both ends inclusive.
func (d DayBoundary) Contains(t time.Time) bool {
	return !t.Before(d.StartUTC) && !t.After(d.EndUTC)
}

// Load resolves an IANA zone name, falling back to DefaultZone when name is empty.
func Load(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return loc, nil
}

// DayOf returns the day of loc that contains ref. The end is 23:59:59.999 local.
func DayOf(ref time.Time, loc *time.Location) DayBoundary {
	start := StartOfDay(ref, loc)
	next := start.AddDate(0, 0, 1)
	return DayBoundary{
		StartUTC: start.UTC(),
		EndUTC:   next.Add(-time.Millisecond).UTC(),
		DateKey:  start.Format(DateLayout),
	}
}

// StartOfDay returns local midnight of ref's day in loc.
func StartOfDay(ref time.Time, loc *time.Location) time.Time {
	local := ref.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DateKey formats ref as the civil date it falls on in loc.
func DateKey(ref time.Time, loc *time.Location) string {
	return ref.In(loc).Format(DateLayout)
}

// WeekStart returns Monday 00:00 of the local week containing ref.
func WeekStart(ref time.Time, loc *time.Location) time.Time {
	start := StartOfDay(ref, loc)
	offset := (int(start.Weekday()) + 6) % 7
	return start.AddDate(0, 0, -offset)
}

// ParseDate parses a YYYY-MM-DD civil date. The result is midnight UTC of that date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
