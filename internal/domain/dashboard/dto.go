package dashboard

import (
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
)

type PersonalSummaryResponse struct {
	PendingTodos      int     `json:"pending_todos"`
	CompletedThisWeek int     `json:"completed_this_week"`
	NextLeaveDate     *string `json:"next_leave_date"`
	LastPunchKind     *string `json:"last_punch_kind"`
	LastPunchAt       *string `json:"last_punch_at"`
}

func NewPersonalSummaryResponse(s PersonalSummary) *PersonalSummaryResponse {
	resp := &PersonalSummaryResponse{
		PendingTodos:      s.PendingTodos,
		CompletedThisWeek: s.CompletedThisWeek,
		LastPunchKind:     s.LastPunchKind,
	}
	if s.NextLeaveDate != nil {
		d := s.NextLeaveDate.Format("2006-01-02")
		resp.NextLeaveDate = &d
	}
	if s.LastPunchAt != nil {
		at := s.LastPunchAt.UTC().Format(time.RFC3339)
		resp.LastPunchAt = &at
	}
	return resp
}

type TeamSummaryResponse struct {
	TotalMembers     int `json:"total_members"`
	ActiveProjects   int `json:"active_projects"`
	OverdueTodos     int `json:"overdue_todos"`
	AttendanceAlerts int `json:"attendance_alerts"`
}

func NewTeamSummaryResponse(s TeamSummary) *TeamSummaryResponse {
	return &TeamSummaryResponse{
		TotalMembers:     s.TotalMembers,
		ActiveProjects:   s.ActiveProjects,
		OverdueTodos:     s.OverdueTodos,
		AttendanceAlerts: s.AttendanceAlerts,
	}
}

type AnnouncementResponse struct {
	ID          string     `json:"id"`
	Message     string     `json:"message"`
	Level       AlertLevel `json:"level"`
	PublishedAt string     `json:"published_at"`
}

func NewAnnouncementResponses(items []Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AnnouncementResponse{
			ID:          a.ID,
			Message:     a.Message,
			Level:       a.Level,
			PublishedAt: a.PublishedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// OverviewResponse keeps every section key present; nil sections encode as null.
type OverviewResponse struct {
	Role            user.Role                `json:"role"`
	Capabilities    user.Capabilities        `json:"capabilities"`
	PersonalSummary *PersonalSummaryResponse `json:"personal_summary"`
	TeamSummary     *TeamSummaryResponse     `json:"team_summary"`
	Announcements   []AnnouncementResponse   `json:"announcements"`
}
