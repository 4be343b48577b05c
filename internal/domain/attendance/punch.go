package attendance

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	messageNeedPunchIn      = "No punch-in recorded yet. Punch in to start your day."
	messageReadyForPunchOut = "Confirm the dialog to save your punch-out."
	messageCompleted        = "Today's attendance is complete. Good work!"
	genericLeaveLabel       = "Leave"
)

// SortEvents returns a chronological copy of events. Events sharing an instant are ordered by ID.
func SortEvents(events []Event) []Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		if c := a.OccurredAt.Compare(b.OccurredAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

func lastEvent(events []Event) *Event {
	if len(events) == 0 {
		return nil
	}
	sorted := SortEvents(events)
	last := sorted[len(sorted)-1]
	return &last
}

// DeriveStatus computes the punch buttons the caller may use today. Leave overrides the events.
func DeriveStatus(events []Event, leave *LeaveToday) PunchState {
	last := lastEvent(events)

	if leave != nil && leave.IsOnLeave {
		label := leave.Kind
		if label == "" {
			label = genericLeaveLabel
		}
		return PunchState{
			IsOnLeave: true,
			LastEvent: last,
			Message:   fmt.Sprintf("%s is registered for today. Ask an admin if it needs to change.", label),
		}
	}

	switch {
	case last == nil:
		return PunchState{CanPunchIn: true, Message: messageNeedPunchIn}
	case last.Kind == PunchIn:
		return PunchState{CanPunchOut: true, LastEvent: last, Message: messageReadyForPunchOut}
	default:
		return PunchState{LastEvent: last, Message: messageCompleted}
	}
}

// ValidateTransition reports whether kind may be appended to the day's events.
func ValidateTransition(events []Event, kind PunchKind) error {
	last := lastEvent(events)

	switch kind {
	case PunchIn:
		if last == nil || last.Kind == PunchOut {
			return nil
		}
		return ErrAlreadyPunchedIn
	case PunchOut:
		if last == nil {
			return ErrNeedsPunchIn
		}
		if last.Kind != PunchIn {
			return ErrAlreadyPunchedOut
		}
		return nil
	default:
		return ErrUnsupportedKind
	}
}
