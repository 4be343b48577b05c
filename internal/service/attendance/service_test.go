package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryEventRepository struct {
	events    []attendance.Event
	listErr   error
	createErr error
	listCalls int
}

func (m *memoryEventRepository) ListForUserAndRange(ctx context.Context, userID string, startUTC, endUTC time.Time) ([]attendance.Event, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []attendance.Event
	for _, e := range m.events {
		if e.UserID == userID && !e.OccurredAt.Before(startUTC) && !e.OccurredAt.After(endUTC) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryEventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	if m.createErr != nil {
		return attendance.Event{}, m.createErr
	}
	event.ID = fmt.Sprintf("evt-%d", len(m.events)+1)
	m.events = append(m.events, event)
	return event, nil
}

type memoryLeaveRepository struct {
	days []leave.Day
	err  error
}

func (m *memoryLeaveRepository) ListForRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]leave.Day, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []leave.Day
	for _, d := range m.days {
		if d.UserID == userID && !d.Date.Before(startDate) && !d.Date.After(endDate) {
			out = append(out, d)
		}
	}
	return out, nil
}

// 2025-09-26 12:00 KST
var noon = time.Date(2025, 9, 26, 3, 0, 0, 0, time.UTC)

var member = user.Actor{ID: "u1", Name: "Jiwoo", Role: user.RoleMember}

func newTestService(t *testing.T, events *memoryEventRepository, leaves *memoryLeaveRepository, now time.Time) attendance.AttendanceService {
	t.Helper()
	loc, err := timezone.Load("Asia/Seoul")
	require.NoError(t, err)
	return NewAttendanceService(events, leaves, timezone.Fixed(now), loc)
}

func TestAttendanceService_PunchIn_Success(t *testing.T) {
	ctx := context.Background()
	events := &memoryEventRepository{}
	svc := newTestService(t, events, &memoryLeaveRepository{}, noon)

	note := "  on site  "
	resp, err := svc.PunchIn(ctx, member, attendance.PunchRequest{Note: &note, Origin: "10.0.0.1"})

	require.NoError(t, err)
	assert.Equal(t, "PUNCH_IN", resp.Event.Kind)
	assert.Equal(t, "10.0.0.1", resp.Event.Origin)
	require.NotNil(t, resp.Event.Note)
	assert.Equal(t, "on site", *resp.Event.Note)
	assert.False(t, resp.State.CanPunchIn)
	assert.True(t, resp.State.CanPunchOut)

	require.Len(t, events.events, 1)
	assert.Equal(t, noon, events.events[0].OccurredAt)
}

func TestAttendanceService_PunchIn_Twice(t *testing.T) {
	ctx := context.Background()
	events := &memoryEventRepository{}
	svc := newTestService(t, events, &memoryLeaveRepository{}, noon)

	_, err := svc.PunchIn(ctx, member, attendance.PunchRequest{})
	require.NoError(t, err)

	_, err = svc.PunchIn(ctx, member, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
	assert.Len(t, events.events, 1)
}

func TestAttendanceService_PunchOut_WithoutPunchIn(t *testing.T) {
	svc := newTestService(t, &memoryEventRepository{}, &memoryLeaveRepository{}, noon)

	_, err := svc.PunchOut(context.Background(), member, attendance.PunchRequest{})

	assert.ErrorIs(t, err, attendance.ErrNeedsPunchIn)
}

func TestAttendanceService_PunchOut_ClosesDay(t *testing.T) {
	ctx := context.Background()
	events := &memoryEventRepository{events: []attendance.Event{
		{ID: "e1", UserID: "u1", Kind: attendance.PunchIn, OccurredAt: noon.Add(-3 * time.Hour)},
	}}
	svc := newTestService(t, events, &memoryLeaveRepository{}, noon)

	resp, err := svc.PunchOut(ctx, member, attendance.PunchRequest{})

	require.NoError(t, err)
	assert.False(t, resp.State.CanPunchIn)
	assert.False(t, resp.State.CanPunchOut)
}

func TestAttendanceService_YesterdayDoesNotCount(t *testing.T) {
	// 2025-09-25 23:00 KST is the previous local day.
	yesterday := time.Date(2025, 9, 25, 14, 0, 0, 0, time.UTC)
	events := &memoryEventRepository{events: []attendance.Event{
		{ID: "e1", UserID: "u1", Kind: attendance.PunchIn, OccurredAt: yesterday},
	}}
	svc := newTestService(t, events, &memoryLeaveRepository{}, noon)

	status, err := svc.GetTodayStatus(context.Background(), member)

	require.NoError(t, err)
	assert.Equal(t, "2025-09-26", status.Date)
	assert.True(t, status.State.CanPunchIn)
	assert.Empty(t, status.Events)
}

func TestAttendanceService_BlockedByLeave(t *testing.T) {
	events := &memoryEventRepository{}
	leaves := &memoryLeaveRepository{days: []leave.Day{
		{UserID: "u1", Date: time.Date(2025, 9, 26, 0, 0, 0, 0, time.UTC), IsFullDay: true, Kind: leave.KindAnnual},
	}}
	svc := newTestService(t, events, leaves, noon)

	_, err := svc.PunchIn(context.Background(), member, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrBlockedByLeave)
	assert.Empty(t, events.events)

	status, err := svc.GetTodayStatus(context.Background(), member)
	require.NoError(t, err)
	assert.True(t, status.State.IsOnLeave)
	assert.Contains(t, status.State.Message, "Annual leave")
}

func TestAttendanceService_LeaveTakesPrecedenceOverTransition(t *testing.T) {
	events := &memoryEventRepository{events: []attendance.Event{
		{ID: "e1", UserID: "u1", Kind: attendance.PunchIn, OccurredAt: noon.Add(-time.Hour)},
	}}
	leaves := &memoryLeaveRepository{days: []leave.Day{
		{UserID: "u1", Date: time.Date(2025, 9, 26, 0, 0, 0, 0, time.UTC), Kind: leave.KindHalfDayPM},
	}}
	svc := newTestService(t, events, leaves, noon)

	_, err := svc.PunchIn(context.Background(), member, attendance.PunchRequest{})

	assert.ErrorIs(t, err, attendance.ErrBlockedByLeave)
}

func TestAttendanceService_GuestRejectedBeforeStore(t *testing.T) {
	events := &memoryEventRepository{}
	svc := newTestService(t, events, &memoryLeaveRepository{}, noon)
	guest := user.Actor{ID: "g1", Role: user.RoleGuest}

	_, err := svc.PunchIn(context.Background(), guest, attendance.PunchRequest{})
	assert.ErrorIs(t, err, user.ErrRoleNotAllowed)

	_, err = svc.GetTodayStatus(context.Background(), guest)
	assert.ErrorIs(t, err, user.ErrRoleNotAllowed)

	assert.Equal(t, 0, events.listCalls)
}

func TestAttendanceService_StoreFailures(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	svc := newTestService(t, &memoryEventRepository{listErr: dbErr}, &memoryLeaveRepository{}, noon)
	_, err := svc.PunchIn(ctx, member, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrStatusUnavailable)
	assert.NotErrorIs(t, err, attendance.ErrPunchNotSaved)

	svc = newTestService(t, &memoryEventRepository{}, &memoryLeaveRepository{err: dbErr}, noon)
	_, err = svc.GetTodayStatus(ctx, member)
	assert.ErrorIs(t, err, attendance.ErrStatusUnavailable)

	svc = newTestService(t, &memoryEventRepository{createErr: dbErr}, &memoryLeaveRepository{}, noon)
	_, err = svc.PunchIn(ctx, member, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrPunchNotSaved)
}

func TestAttendanceService_NoteTooLong(t *testing.T) {
	events := &memoryEventRepository{}
	svc := newTestService(t, events, &memoryLeaveRepository{}, noon)
	long := string(make([]rune, attendance.MaxNoteLength+1))

	_, err := svc.PunchIn(context.Background(), member, attendance.PunchRequest{Note: &long})

	assert.Error(t, err)
	assert.Equal(t, 0, events.listCalls)
}

func TestAttendanceService_PunchIn_AfterPunchOut(t *testing.T) {
	events := &memoryEventRepository{events: []attendance.Event{
		{ID: "e1", UserID: "u1", Kind: attendance.PunchIn, OccurredAt: noon.Add(-3 * time.Hour)},
		{ID: "e2", UserID: "u1", Kind: attendance.PunchOut, OccurredAt: noon.Add(-time.Hour)},
	}}
	svc := newTestService(t, events, &memoryLeaveRepository{}, noon)

	resp, err := svc.PunchIn(context.Background(), member, attendance.PunchRequest{})

	require.NoError(t, err)
	assert.True(t, resp.State.CanPunchOut)
	assert.Len(t, events.events, 3)
}
