package todo

import (
	"slices"
	"strings"
	"time"
)

type Column struct {
	Status Status
	Label  string
	Count  int
	Items  []Item
}

type Stats struct {
	Total    int
	ByStatus map[Status]int
	Overdue  int
	DueToday int
}

type Board struct {
	Columns []Column
	Stats   Stats
}

// BuildBoard groups items into the fixed status columns. todayKey is the local
// YYYY-MM-DD of "today" and decides overdue and due-today counts.
// Items keep their input order inside a column; items with an unknown status
// are counted in Total only.
func BuildBoard(items []Item, todayKey string) Board {
	byStatus := make(map[Status][]Item, len(StatusOrder))
	stats := Stats{
		Total:    len(items),
		ByStatus: make(map[Status]int, len(StatusOrder)),
	}
	for _, status := range StatusOrder {
		stats.ByStatus[status] = 0
	}

	for _, item := range items {
		if item.Status.IsValid() {
			byStatus[item.Status] = append(byStatus[item.Status], item)
			stats.ByStatus[item.Status]++
		}

		due := item.DueDateKey()
		switch {
		case due == "":
		case due < todayKey:
			stats.Overdue++
		case due == todayKey:
			stats.DueToday++
		}
	}

	columns := make([]Column, 0, len(StatusOrder))
	for _, status := range StatusOrder {
		colItems := byStatus[status]
		if colItems == nil {
			colItems = []Item{}
		}
		columns = append(columns, Column{
			Status: status,
			Label:  status.Label(),
			Count:  len(colItems),
			Items:  colItems,
		})
	}

	return Board{Columns: columns, Stats: stats}
}

// Filter narrows a todo list. Zero values match everything.
type Filter struct {
	Statuses    []Status
	ProjectIDs  []string
	AssigneeIDs []string
	DueFrom     *time.Time
	DueTo       *time.Time
	SearchText  string
}

// Matches reports whether item passes every condition of f.
func (f Filter) Matches(item Item) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, item.Status) {
		return false
	}
	if len(f.ProjectIDs) > 0 && !slices.Contains(f.ProjectIDs, item.ProjectID) {
		return false
	}
	if len(f.AssigneeIDs) > 0 && !slices.Contains(f.AssigneeIDs, item.AssigneeID) {
		return false
	}
	if f.DueFrom != nil && (item.DueDate == nil || item.DueDate.Before(*f.DueFrom)) {
		return false
	}
	if f.DueTo != nil && (item.DueDate == nil || item.DueDate.After(*f.DueTo)) {
		return false
	}
	if text := strings.ToLower(strings.TrimSpace(f.SearchText)); text != "" {
		haystack := []string{item.Title, item.ProjectCode, item.ProjectName}
		if item.Description != nil {
			haystack = append(haystack, *item.Description)
		}
		found := false
		for _, h := range haystack {
			if strings.Contains(strings.ToLower(h), text) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the items matching f, in their original order.
func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

var statusWeight = map[Status]int{
	StatusIncoming: 5,
	StatusPOPlaced: 4,
	StatusDesign:   3,
	StatusHold:     2,
	StatusPrework:  1,
}

// DaysUntilDue returns the number of civil days from today to the due date.
// ok is false when the item has no due date.
func DaysUntilDue(item Item, today time.Time) (days int, ok bool) {
	if item.DueDate == nil {
		return 0, false
	}
	todayCivil := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(item.DueDate.Sub(todayCivil).Hours() / 24), true
}

// Priority scores an item for the list view. Higher goes first.
// today is the local civil date.
func Priority(item Item, today time.Time) int {
	score := statusWeight[item.Status]
	days, ok := DaysUntilDue(item, today)
	if !ok {
		return score
	}
	switch {
	case days < 0:
		score += 10
	case days == 0:
		score += 5
	case days <= 3:
		score += 2
	}
	return score
}

// SortByPriority returns a copy of items ordered by descending Priority.
// Equal scores keep their input order.
func SortByPriority(items []Item, today time.Time) []Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return Priority(b, today) - Priority(a, today)
	})
	return sorted
}
