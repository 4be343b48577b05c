package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"golang.org/x/sync/errgroup"
)

// AnnouncementLimit caps the announcements shown on the dashboard.
const AnnouncementLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clock timezone.Clock
	loc   *time.Location
}

func NewDashboardService(repo dashboard.DashboardRepository, clock timezone.Clock, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		clock:               clock,
		loc:                 loc,
	}
}

func (s *DashboardServiceImpl) window() dashboard.Window {
	now := s.clock()
	day := timezone.DayOf(now, s.loc)
	today, _ := timezone.ParseDate(day.DateKey)
	return dashboard.Window{
		DayStartUTC:  day.StartUTC,
		DayEndUTC:    day.EndUTC,
		Today:        today,
		WeekStartUTC: timezone.WeekStart(now, s.loc).UTC(),
	}
}

// GetOverview fetches only the sections the actor's capabilities allow, in parallel.
// A guest gets every section as null without touching the store.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context, actor user.Actor) (dashboard.OverviewResponse, error) {
	caps := user.Resolve(actor.Role)
	resp := dashboard.OverviewResponse{
		Role:         actor.Role,
		Capabilities: caps,
	}
	if !caps.CanViewPersonalSummary && !caps.CanViewTeamSummary && !caps.CanViewAnnouncements {
		return resp, nil
	}

	window := s.window()
	var (
		personal      *dashboard.PersonalSummaryResponse
		team          *dashboard.TeamSummaryResponse
		announcements []dashboard.AnnouncementResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	if caps.CanViewPersonalSummary {
		g.Go(func() error {
			summary, err := s.GetPersonalSummary(gCtx, actor.ID, window)
			if err != nil {
				return fmt.Errorf("personal summary: %w", err)
			}
			personal = dashboard.NewPersonalSummaryResponse(summary)
			return nil
		})
	}

	if caps.CanViewTeamSummary {
		g.Go(func() error {
			summary, err := s.GetTeamSummary(gCtx, window)
			if err != nil {
				return fmt.Errorf("team summary: %w", err)
			}
			team = dashboard.NewTeamSummaryResponse(summary)
			return nil
		})
	}

	if caps.CanViewAnnouncements {
		g.Go(func() error {
			items, err := s.ListAnnouncements(gCtx, actor.Role, AnnouncementLimit)
			if err != nil {
				return fmt.Errorf("announcements: %w", err)
			}
			announcements = dashboard.NewAnnouncementResponses(items)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "failed to load dashboard", "user_id", actor.ID, "error", err)
		return dashboard.OverviewResponse{}, fmt.Errorf("%w: %w", dashboard.ErrDashboardUnavailable, err)
	}

	resp.PersonalSummary = personal
	resp.TeamSummary = team
	resp.Announcements = announcements
	return resp, nil
}
