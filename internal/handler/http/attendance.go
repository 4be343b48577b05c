package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
)

type AttendanceHandler interface {
	GetToday(w http.ResponseWriter, r *http.Request)
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	clock             timezone.Clock
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, clock timezone.Clock) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		clock:             clock,
	}
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	result, err := h.attendanceService.GetTodayStatus(r.Context(), actor)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), result)
}

// PunchIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, h.attendanceService.PunchIn)
}

// PunchOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, h.attendanceService.PunchOut)
}

type punchFunc func(ctx context.Context, actor user.Actor, req attendance.PunchRequest) (attendance.PunchResponse, error)

func (h *attendanceHandlerImpl) punch(w http.ResponseWriter, r *http.Request, do punchFunc) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	// The body is optional; a punch without a note sends nothing.
	var req attendance.PunchRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		slog.WarnContext(r.Context(), "punch decode error", "error", err)
		response.BadRequest(w, h.clock(), "Invalid request format")
		return
	}
	req.Origin = clientIP(r)

	result, err := do(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Created(w, h.clock(), result)
}
