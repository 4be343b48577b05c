package leave

import "time"

type Kind string

const (
	KindAnnual       Kind = "annual"
	KindHalfDayAM    Kind = "half_am"
	KindHalfDayPM    Kind = "half_pm"
	KindSick         Kind = "sick"
	KindBusinessTrip Kind = "business_trip"
	KindTraining     Kind = "training"
	KindOther        Kind = "other"
)

var kindLabels = map[Kind]string{
	KindAnnual:       "Annual leave",
	KindHalfDayAM:    "Morning half-day",
	KindHalfDayPM:    "Afternoon half-day",
	KindSick:         "Sick leave",
	KindBusinessTrip: "Business trip",
	KindTraining:     "Training",
	KindOther:        "Other leave",
}

// Label returns the display name of the kind, or "" for an unknown kind.
func (k Kind) Label() string {
	return kindLabels[k]
}

// IsValid checks if the kind is one of the known leave kinds
func (k Kind) IsValid() bool {
	_, ok := kindLabels[k]
	return ok
}

type Shading string

const (
	ShadingNone Shading = "none"
	ShadingHalf Shading = "half"
	ShadingFull Shading = "full"
)

// Day is one pre-registered leave entry of a user. Date is a civil date (midnight UTC).
type Day struct {
	ID        string
	UserID    string
	Date      time.Time
	IsFullDay bool
	Kind      Kind
	Note      *string
	CreatedAt time.Time
}

// DateKey returns the entry date as YYYY-MM-DD.
func (d Day) DateKey() string {
	return d.Date.Format("2006-01-02")
}
