package dashboard

import (
	"context"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
)

type DashboardService interface {
	// GetOverview returns the sections the actor's role may see. Withheld sections are null.
	GetOverview(ctx context.Context, actor user.Actor) (OverviewResponse, error)
}
