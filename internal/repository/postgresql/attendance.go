package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EventRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanEvent(row scanner) (attendance.Event, error) {
	var (
		e    attendance.Event
		kind string
	)
	if err := row.Scan(&e.ID, &e.UserID, &kind, &e.OccurredAt, &e.Origin, &e.Note); err != nil {
		return attendance.Event{}, err
	}
	e.Kind = attendance.PunchKind(kind)
	e.OccurredAt = e.OccurredAt.UTC()
	return e, nil
}

// ListForUserAndRange implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) ListForUserAndRange(ctx context.Context, userID string, startUTC, endUTC time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, kind, occurred_at, origin, note
		FROM attendance_events
		WHERE user_id = $1 AND occurred_at BETWEEN $2 AND $3
		ORDER BY occurred_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, userID, startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}
	return events, nil
}

// Create implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to generate event id: %w", err)
	}

	query := `
		INSERT INTO attendance_events (id, user_id, kind, occurred_at, origin, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, kind, occurred_at, origin, note
	`

	created, err := scanEvent(q.QueryRow(ctx, query,
		id.String(),
		event.UserID,
		string(event.Kind),
		event.OccurredAt,
		event.Origin,
		event.Note,
	))
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}
	return created, nil
}
