package user

import "slices"

type Widget string

const (
	WidgetTeamOverview     Widget = "team_overview"
	WidgetPersonalOverview Widget = "personal_overview"
	WidgetAnnouncements    Widget = "announcements"
)

// Capabilities is everything a role may see or do.
type Capabilities struct {
	CanViewTeamSummary     bool     `json:"can_view_team_summary"`
	CanViewPersonalSummary bool     `json:"can_view_personal_summary"`
	CanViewAnnouncements   bool     `json:"can_view_announcements"`
	CanPunch               bool     `json:"can_punch"`
	CanCreateTodo          bool     `json:"can_create_todo"`
	CanDeleteTodo          bool     `json:"can_delete_todo"`
	CanEditAfterLock       bool     `json:"can_edit_after_lock"`
	AllowedWidgets         []Widget `json:"allowed_widgets"`
}

// roleCapabilities is read-only after init. Resolve hands out copies.
var roleCapabilities = map[Role]Capabilities{
	RoleAdmin: {
		CanViewTeamSummary:     true,
		CanViewPersonalSummary: true,
		CanViewAnnouncements:   true,
		CanPunch:               true,
		CanCreateTodo:          true,
		CanDeleteTodo:          true,
		CanEditAfterLock:       true,
		AllowedWidgets:         []Widget{WidgetTeamOverview, WidgetPersonalOverview, WidgetAnnouncements},
	},
	RoleMember: {
		CanViewPersonalSummary: true,
		CanViewAnnouncements:   true,
		CanPunch:               true,
		CanCreateTodo:          true,
		AllowedWidgets:         []Widget{WidgetPersonalOverview, WidgetAnnouncements},
	},
	RoleGuest: {
		AllowedWidgets: []Widget{},
	},
}

// Resolve returns the capabilities of role. Unknown roles get guest capabilities.
// The returned value never shares memory with the table or with other callers.
func Resolve(role Role) Capabilities {
	caps, ok := roleCapabilities[role]
	if !ok {
		caps = roleCapabilities[RoleGuest]
	}
	caps.AllowedWidgets = slices.Clone(caps.AllowedWidgets)
	if caps.AllowedWidgets == nil {
		caps.AllowedWidgets = []Widget{}
	}
	return caps
}

// IsAllowed reports whether role may use the attendance, todo and calendar features.
func IsAllowed(role Role) bool {
	return role == RoleAdmin || role == RoleMember
}

// HasWidget checks if the capability set includes widget
func (c Capabilities) HasWidget(widget Widget) bool {
	return slices.Contains(c.AllowedWidgets, widget)
}

type Permission string

const (
	PermissionAttendancePunch Permission = "attendance.punch"
	PermissionCalendarView    Permission = "calendar.view"

	PermissionTodoView   Permission = "todo.view"
	PermissionTodoCreate Permission = "todo.create"
	PermissionTodoDelete Permission = "todo.delete"

	PermissionDashboardTeam     Permission = "dashboard.team"
	PermissionDashboardPersonal Permission = "dashboard.personal"
)

// HasPermission checks if a role has a specific permission.
// Permissions are a string view over the capability table.
func HasPermission(role Role, permission Permission) bool {
	caps := Resolve(role)
	switch permission {
	case PermissionAttendancePunch:
		return caps.CanPunch
	case PermissionCalendarView, PermissionTodoView:
		return IsAllowed(role)
	case PermissionTodoCreate:
		return caps.CanCreateTodo
	case PermissionTodoDelete:
		return caps.CanDeleteTodo
	case PermissionDashboardTeam:
		return caps.CanViewTeamSummary
	case PermissionDashboardPersonal:
		return caps.CanViewPersonalSummary
	default:
		return false
	}
}
