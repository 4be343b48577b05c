package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListForRange implements leave.LeaveRepository. Rows come back in insertion order per date
// so that the first registered entry wins when a date has several.
func (r *leaveRepositoryImpl) ListForRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]leave.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_date, is_full_day, kind, note, created_at
		FROM leave_days
		WHERE user_id = $1 AND leave_date BETWEEN $2::date AND $3::date
		ORDER BY leave_date ASC, created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, userID, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave days: %w", err)
	}
	defer rows.Close()

	var days []leave.Day
	for rows.Next() {
		var (
			d    leave.Day
			kind string
		)
		if err := rows.Scan(&d.ID, &d.UserID, &d.Date, &d.IsFullDay, &kind, &d.Note, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave day: %w", err)
		}
		d.Kind = leave.Kind(kind)
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave days: %w", err)
	}
	return days, nil
}
