package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/todo"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetPersonalSummary returns todo counters and the next leave date in a single query,
// plus the latest punch of the day.
func (r *dashboardRepositoryImpl) GetPersonalSummary(ctx context.Context, userID string, window dashboard.Window) (dashboard.PersonalSummary, error) {
	q := GetQuerier(ctx, r.db)

	// Incoming is the last board column; anything before it is still pending.
	query := `
		SELECT
			(SELECT COUNT(*) FROM todos WHERE assignee_id = $1 AND status <> $2),
			(SELECT COUNT(*) FROM todos WHERE assignee_id = $1 AND status = $2 AND updated_at >= $3),
			(SELECT MIN(leave_date) FROM leave_days WHERE user_id = $1 AND leave_date >= $4::date)
	`

	var summary dashboard.PersonalSummary
	err := q.QueryRow(ctx, query,
		userID,
		string(todo.StatusIncoming),
		window.WeekStartUTC,
		window.Today.Format("2006-01-02"),
	).Scan(&summary.PendingTodos, &summary.CompletedThisWeek, &summary.NextLeaveDate)
	if err != nil {
		return dashboard.PersonalSummary{}, fmt.Errorf("failed to get personal summary: %w", err)
	}

	punchQuery := `
		SELECT kind, occurred_at
		FROM attendance_events
		WHERE user_id = $1 AND occurred_at BETWEEN $2 AND $3
		ORDER BY occurred_at DESC, id DESC
		LIMIT 1
	`
	var kind string
	err = q.QueryRow(ctx, punchQuery, userID, window.DayStartUTC, window.DayEndUTC).
		Scan(&kind, &summary.LastPunchAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		summary.LastPunchAt = nil
	case err != nil:
		return dashboard.PersonalSummary{}, fmt.Errorf("failed to get last punch: %w", err)
	default:
		summary.LastPunchKind = &kind
	}

	return summary, nil
}

// GetTeamSummary returns team counters in a single query. Members on full-day leave
// are not counted as missing a punch-in.
func (r *dashboardRepositoryImpl) GetTeamSummary(ctx context.Context, window dashboard.Window) (dashboard.TeamSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role IN ('admin', 'member')),
			(SELECT COUNT(*) FROM projects WHERE is_active),
			(SELECT COUNT(*) FROM todos WHERE due_date < $1::date),
			(SELECT COUNT(*) FROM users u
				WHERE u.role IN ('admin', 'member')
				AND NOT EXISTS (
					SELECT 1 FROM attendance_events e
					WHERE e.user_id = u.id AND e.kind = 'PUNCH_IN' AND e.occurred_at BETWEEN $2 AND $3
				)
				AND NOT EXISTS (
					SELECT 1 FROM leave_days l
					WHERE l.user_id = u.id AND l.leave_date = $1::date AND l.is_full_day
				))
	`

	var summary dashboard.TeamSummary
	err := q.QueryRow(ctx, query,
		window.Today.Format("2006-01-02"),
		window.DayStartUTC,
		window.DayEndUTC,
	).Scan(&summary.TotalMembers, &summary.ActiveProjects, &summary.OverdueTodos, &summary.AttendanceAlerts)
	if err != nil {
		return dashboard.TeamSummary{}, fmt.Errorf("failed to get team summary: %w", err)
	}
	return summary, nil
}

// ListAnnouncements returns the newest announcements addressed to role. An empty
// audience addresses everyone.
func (r *dashboardRepositoryImpl) ListAnnouncements(ctx context.Context, role user.Role, limit int) ([]dashboard.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, message, level, audience, published_at
		FROM announcements
		WHERE cardinality(audience) = 0 OR $1 = ANY(audience)
		ORDER BY published_at DESC, id DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, string(role), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	items := []dashboard.Announcement{}
	for rows.Next() {
		var (
			a        dashboard.Announcement
			level    string
			audience []string
		)
		if err := rows.Scan(&a.ID, &a.Message, &level, &audience, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		a.Level = dashboard.AlertLevel(level)
		for _, raw := range audience {
			a.Audience = append(a.Audience, user.ParseRole(raw))
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate announcements: %w", err)
	}
	return items, nil
}
