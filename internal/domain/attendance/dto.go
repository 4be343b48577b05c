package attendance

import (
	"time"
	"unicode/utf8"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/validator"
)

const MaxNoteLength = 200

type PunchRequest struct {
	Note   *string `json:"note"`
	Origin string  `json:"-"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Note != nil && utf8.RuneCountInString(*r.Note) > MaxNoteLength {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Kind       string  `json:"kind"`
	OccurredAt string  `json:"occurred_at"`
	Origin     string  `json:"origin"`
	Note       *string `json:"note"`
}

func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		Kind:       string(e.Kind),
		OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339),
		Origin:     e.Origin,
		Note:       e.Note,
	}
}

type PunchStateResponse struct {
	CanPunchIn  bool           `json:"can_punch_in"`
	CanPunchOut bool           `json:"can_punch_out"`
	IsOnLeave   bool           `json:"is_on_leave"`
	LastEvent   *EventResponse `json:"last_event"`
	Message     string         `json:"message"`
}

func NewPunchStateResponse(s PunchState) PunchStateResponse {
	resp := PunchStateResponse{
		CanPunchIn:  s.CanPunchIn,
		CanPunchOut: s.CanPunchOut,
		IsOnLeave:   s.IsOnLeave,
		Message:     s.Message,
	}
	if s.LastEvent != nil {
		last := NewEventResponse(*s.LastEvent)
		resp.LastEvent = &last
	}
	return resp
}

type TodayStatusResponse struct {
	Date   string             `json:"date"`
	State  PunchStateResponse `json:"state"`
	Events []EventResponse    `json:"events"`
}

type PunchResponse struct {
	Event EventResponse      `json:"event"`
	State PunchStateResponse `json:"state"`
}
