package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access methods for punch events.
type EventRepository interface {
	// ListForUserAndRange returns the user's events with OccurredAt in [startUTC, endUTC]
	ListForUserAndRange(ctx context.Context, userID string, startUTC, endUTC time.Time) ([]Event, error)

	// Create stores a new event and returns it with its ID assigned
	Create(ctx context.Context, event Event) (Event, error)
}
