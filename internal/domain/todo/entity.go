package todo

import (
	"time"
)

type Status string

const (
	StatusPrework  Status = "prework"
	StatusDesign   Status = "design"
	StatusHold     Status = "hold"
	StatusPOPlaced Status = "po_placed"
	StatusIncoming Status = "incoming"
)

// StatusOrder is the fixed left-to-right column order of the board.
var StatusOrder = [...]Status{StatusPrework, StatusDesign, StatusHold, StatusPOPlaced, StatusIncoming}

var statusLabels = map[Status]string{
	StatusPrework:  "Before work",
	StatusDesign:   "In design",
	StatusHold:     "On hold",
	StatusPOPlaced: "PO placed",
	StatusIncoming: "Incoming",
}

// Label returns the column title of the status
func (s Status) Label() string {
	return statusLabels[s]
}

// IsValid checks if the status is one of the board stages
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

type Project struct {
	ID       string
	Code     string
	Name     string
	IsActive bool
}

type Item struct {
	ID           string
	ProjectID    string
	ProjectCode  string
	ProjectName  string
	AssigneeID   string
	AssigneeName string
	Title        string
	Description  *string
	Issue        *string
	Solution     *string
	Decision     *string
	Notes        *string
	Status       Status
	DueDate      *time.Time // civil date, midnight UTC
	LockedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DueDateKey returns the due date as YYYY-MM-DD, or "" when unset.
func (i Item) DueDateKey() string {
	if i.DueDate == nil {
		return ""
	}
	return i.DueDate.Format("2006-01-02")
}

// ItemPatch holds the fields of an update. Nil means unchanged.
// An empty string on a nullable text field clears it.
type ItemPatch struct {
	Title        *string
	Description  *string
	Issue        *string
	Solution     *string
	Decision     *string
	Notes        *string
	Status       *Status
	DueDate      *time.Time
	ClearDueDate bool
	LockedAt     *time.Time
}
