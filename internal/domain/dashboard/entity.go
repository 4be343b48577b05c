package dashboard

import (
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
)

type AlertLevel string

const (
	AlertInfo     AlertLevel = "info"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

type Announcement struct {
	ID          string
	Message     string
	Level       AlertLevel
	Audience    []user.Role // empty means everyone who can see announcements
	PublishedAt time.Time
}

type PersonalSummary struct {
	PendingTodos      int
	CompletedThisWeek int
	NextLeaveDate     *time.Time
	LastPunchKind     *string
	LastPunchAt       *time.Time
}

type TeamSummary struct {
	TotalMembers     int
	ActiveProjects   int
	OverdueTodos     int
	AttendanceAlerts int
}

// Window is the time frame the summaries are computed for.
type Window struct {
	DayStartUTC  time.Time
	DayEndUTC    time.Time
	Today        time.Time // local civil date, midnight UTC
	WeekStartUTC time.Time
}
