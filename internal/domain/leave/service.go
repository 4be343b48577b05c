package leave

import (
	"context"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
)

// CalendarService builds the monthly leave calendar of the caller
type CalendarService interface {
	// GetMonthlyCalendar returns the 6x7 grid for the requested month
	GetMonthlyCalendar(ctx context.Context, actor user.Actor, req MonthlyCalendarRequest) (MonthlyCalendarResponse, error)
}
