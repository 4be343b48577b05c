package attendance

import (
	"time"
)

type PunchKind string

const (
	PunchIn  PunchKind = "PUNCH_IN"
	PunchOut PunchKind = "PUNCH_OUT"
)

// IsValid checks if the kind is a punch the state machine understands
func (k PunchKind) IsValid() bool {
	return k == PunchIn || k == PunchOut
}

// Event is one immutable punch record.
type Event struct {
	ID         string
	UserID     string
	Kind       PunchKind
	OccurredAt time.Time
	Origin     string
	Note       *string
}

// LeaveToday describes pre-registered leave for the day being evaluated.
// Kind is the display name of the leave, empty when unknown.
type LeaveToday struct {
	IsOnLeave bool
	Kind      string
}

// PunchState is what the caller may do next.
type PunchState struct {
	CanPunchIn  bool
	CanPunchOut bool
	IsOnLeave   bool
	LastEvent   *Event
	Message     string
}
