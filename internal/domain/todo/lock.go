package todo

import (
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
)

// DefaultLockHour is the local hour on the following day at which edits freeze.
const DefaultLockHour = 9

// ComputeLockDeadline returns 09:00 local on the day after ref's local day, in UTC.
func ComputeLockDeadline(ref time.Time, loc *time.Location) time.Time {
	return ComputeLockDeadlineAt(ref, loc, DefaultLockHour)
}

// ComputeLockDeadlineAt is ComputeLockDeadline with a configurable hour.
func ComputeLockDeadlineAt(ref time.Time, loc *time.Location, hour int) time.Time {
	nextDay := timezone.StartOfDay(ref, loc).AddDate(0, 0, 1)
	return nextDay.Add(time.Duration(hour) * time.Hour).UTC()
}

// IsLocked reports whether role may no longer edit an item with the given deadline.
// Roles that can edit after lock are never locked; a nil deadline never locks.
func IsLocked(deadline *time.Time, now time.Time, role user.Role) bool {
	if user.Resolve(role).CanEditAfterLock {
		return false
	}
	if deadline == nil {
		return false
	}
	return !now.Before(*deadline)
}

type EditLockStatus struct {
	IsLocked bool       `json:"is_locked"`
	CanEdit  bool       `json:"can_edit"`
	LockedAt *time.Time `json:"locked_at"`
	Reason   *string    `json:"reason"`
}

// EditLockFor describes the lock of item as seen by role at now.
func EditLockFor(item Item, role user.Role, now time.Time) EditLockStatus {
	status := EditLockStatus{
		LockedAt: item.LockedAt,
		CanEdit:  user.IsAllowed(role),
	}
	if IsLocked(item.LockedAt, now, role) {
		reason := ErrTodoLocked.Error()
		status.IsLocked = true
		status.CanEdit = false
		status.Reason = &reason
	}
	return status
}
