package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
)

type CalendarServiceImpl struct {
	leave.LeaveRepository
}

func NewCalendarService(leaveRepository leave.LeaveRepository) leave.CalendarService {
	return &CalendarServiceImpl{
		LeaveRepository: leaveRepository,
	}
}

// GetMonthlyCalendar implements leave.CalendarService.
// The store is queried for the whole 6-week grid so adjacent-month days are shaded too.
func (s *CalendarServiceImpl) GetMonthlyCalendar(ctx context.Context, actor user.Actor, req leave.MonthlyCalendarRequest) (leave.MonthlyCalendarResponse, error) {
	if !user.IsAllowed(actor.Role) {
		return leave.MonthlyCalendarResponse{}, user.ErrRoleNotAllowed
	}
	if err := leave.ValidateYearMonth(req.Year, req.Month); err != nil {
		return leave.MonthlyCalendarResponse{}, err
	}

	start, end := leave.GridRange(req.Year, req.Month)
	entries, err := s.LeaveRepository.ListForRange(ctx, actor.ID, start, end)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list leave days", "user_id", actor.ID, "error", err)
		return leave.MonthlyCalendarResponse{}, fmt.Errorf("%w: %w", leave.ErrCalendarUnavailable, err)
	}

	matrix, err := leave.BuildMonthMatrix(req.Year, req.Month, entries)
	if err != nil {
		return leave.MonthlyCalendarResponse{}, err
	}

	return leave.MonthlyCalendarResponse{
		Year:     req.Year,
		Month:    req.Month,
		Calendar: matrix,
	}, nil
}
