package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
)

type LeaveHandler interface {
	GetMonthlyCalendar(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	calendarService leave.CalendarService
	clock           timezone.Clock
	loc             *time.Location
}

func NewLeaveHandler(calendarService leave.CalendarService, clock timezone.Clock, loc *time.Location) LeaveHandler {
	return &leaveHandlerImpl{
		calendarService: calendarService,
		clock:           clock,
		loc:             loc,
	}
}

// GetMonthlyCalendar implements LeaveHandler. Missing year or month default to the current local month.
func (h *leaveHandlerImpl) GetMonthlyCalendar(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	local := h.clock().In(h.loc)
	q := r.URL.Query()
	req, err := leave.ParseMonthlyCalendarRequest(q.Get("year"), q.Get("month"), local.Year(), int(local.Month()))
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	result, err := h.calendarService.GetMonthlyCalendar(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), result)
}
