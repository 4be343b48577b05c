package attendance

import (
	"context"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// GetTodayStatus returns today's punch state of the actor
	GetTodayStatus(ctx context.Context, actor user.Actor) (TodayStatusResponse, error)

	// PunchIn records the start of the working day
	PunchIn(ctx context.Context, actor user.Actor, req PunchRequest) (PunchResponse, error)

	// PunchOut records the end of the working day
	PunchOut(ctx context.Context, actor user.Actor, req PunchRequest) (PunchResponse, error)
}
