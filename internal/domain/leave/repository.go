package leave

import (
	"context"
	"time"
)

// LeaveRepository reads pre-registered leave entries.
type LeaveRepository interface {
	// ListForRange returns the user's entries whose date lies in [startDate, endDate], both civil dates.
	ListForRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]Day, error)
}
