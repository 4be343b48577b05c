package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
)

// Concurrent punches by the same user race between the read and the insert.
// The store offers no uniqueness guarantee for alternation, so two simultaneous
// punch-ins can both pass validation.
type AttendanceServiceImpl struct {
	attendance.EventRepository
	leave.LeaveRepository
	clock timezone.Clock
	loc   *time.Location
}

func NewAttendanceService(eventRepository attendance.EventRepository, leaveRepository leave.LeaveRepository, clock timezone.Clock, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EventRepository: eventRepository,
		LeaveRepository: leaveRepository,
		clock:           clock,
		loc:             loc,
	}
}

type dayContext struct {
	day    timezone.DayBoundary
	events []attendance.Event
	leave  *attendance.LeaveToday
}

func (s *AttendanceServiceImpl) loadDay(ctx context.Context, userID string, now time.Time) (dayContext, error) {
	day := timezone.DayOf(now, s.loc)

	events, err := s.EventRepository.ListForUserAndRange(ctx, userID, day.StartUTC, day.EndUTC)
	if err != nil {
		return dayContext{}, fmt.Errorf("failed to list events: %w", err)
	}

	civil, err := timezone.ParseDate(day.DateKey)
	if err != nil {
		return dayContext{}, err
	}
	entries, err := s.LeaveRepository.ListForRange(ctx, userID, civil, civil)
	if err != nil {
		return dayContext{}, fmt.Errorf("failed to look up leave: %w", err)
	}

	dc := dayContext{day: day, events: events}
	if entry, ok := leave.ForDate(entries, day.DateKey); ok {
		label := entry.Kind.Label()
		if label == "" {
			label = string(entry.Kind)
		}
		dc.leave = &attendance.LeaveToday{IsOnLeave: true, Kind: label}
	}
	return dc, nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, actor user.Actor) (attendance.TodayStatusResponse, error) {
	if !user.IsAllowed(actor.Role) {
		return attendance.TodayStatusResponse{}, user.ErrRoleNotAllowed
	}

	dc, err := s.loadDay(ctx, actor.ID, s.clock())
	if err != nil {
		slog.ErrorContext(ctx, "failed to load attendance day", "user_id", actor.ID, "error", err)
		return attendance.TodayStatusResponse{}, fmt.Errorf("%w: %w", attendance.ErrStatusUnavailable, err)
	}

	sorted := attendance.SortEvents(dc.events)
	events := make([]attendance.EventResponse, 0, len(sorted))
	for _, e := range sorted {
		events = append(events, attendance.NewEventResponse(e))
	}

	return attendance.TodayStatusResponse{
		Date:   dc.day.DateKey,
		State:  attendance.NewPunchStateResponse(attendance.DeriveStatus(dc.events, dc.leave)),
		Events: events,
	}, nil
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, actor user.Actor, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	return s.punch(ctx, actor, attendance.PunchIn, req)
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, actor user.Actor, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	return s.punch(ctx, actor, attendance.PunchOut, req)
}

func (s *AttendanceServiceImpl) punch(ctx context.Context, actor user.Actor, kind attendance.PunchKind, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	if !user.IsAllowed(actor.Role) {
		return attendance.PunchResponse{}, user.ErrRoleNotAllowed
	}
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	now := s.clock()
	dc, err := s.loadDay(ctx, actor.ID, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load attendance day", "user_id", actor.ID, "error", err)
		return attendance.PunchResponse{}, fmt.Errorf("%w: %w", attendance.ErrStatusUnavailable, err)
	}

	// Leave is checked before the transition so the user sees why punches are off.
	if dc.leave != nil && dc.leave.IsOnLeave {
		return attendance.PunchResponse{}, attendance.ErrBlockedByLeave
	}
	if err := attendance.ValidateTransition(dc.events, kind); err != nil {
		return attendance.PunchResponse{}, err
	}

	var note *string
	if req.Note != nil {
		if trimmed := strings.TrimSpace(*req.Note); trimmed != "" {
			note = &trimmed
		}
	}

	saved, err := s.EventRepository.Create(ctx, attendance.Event{
		UserID:     actor.ID,
		Kind:       kind,
		OccurredAt: now.UTC(),
		Origin:     req.Origin,
		Note:       note,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save punch", "user_id", actor.ID, "kind", kind, "error", err)
		return attendance.PunchResponse{}, fmt.Errorf("%w: %w", attendance.ErrPunchNotSaved, err)
	}

	events := append(dc.events, saved)
	return attendance.PunchResponse{
		Event: attendance.NewEventResponse(saved),
		State: attendance.NewPunchStateResponse(attendance.DeriveStatus(events, nil)),
	}, nil
}
