package dashboard

import (
	"context"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
)

// DashboardRepository defines read-only aggregate queries for the dashboard
type DashboardRepository interface {
	// GetPersonalSummary aggregates one user's todos, leave and punches
	GetPersonalSummary(ctx context.Context, userID string, window Window) (PersonalSummary, error)

	// GetTeamSummary aggregates team-wide counters
	GetTeamSummary(ctx context.Context, window Window) (TeamSummary, error)

	// ListAnnouncements returns the newest announcements addressed to role
	ListAnnouncements(ctx context.Context, role user.Role, limit int) ([]Announcement, error)
}
