package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Admin(t *testing.T) {
	caps := Resolve(RoleAdmin)

	assert.True(t, caps.CanViewTeamSummary)
	assert.True(t, caps.CanDeleteTodo)
	assert.True(t, caps.CanEditAfterLock)
	assert.Equal(t, []Widget{WidgetTeamOverview, WidgetPersonalOverview, WidgetAnnouncements}, caps.AllowedWidgets)
}

func TestResolve_Member(t *testing.T) {
	caps := Resolve(RoleMember)

	assert.False(t, caps.CanViewTeamSummary)
	assert.True(t, caps.CanViewPersonalSummary)
	assert.True(t, caps.CanPunch)
	assert.False(t, caps.CanDeleteTodo)
	assert.False(t, caps.CanEditAfterLock)
	assert.Equal(t, []Widget{WidgetPersonalOverview, WidgetAnnouncements}, caps.AllowedWidgets)
}

func TestResolve_GuestAndUnknown(t *testing.T) {
	for _, role := range []Role{RoleGuest, Role("superuser"), Role("")} {
		caps := Resolve(role)
		assert.False(t, caps.CanPunch, role)
		assert.False(t, caps.CanViewAnnouncements, role)
		assert.NotNil(t, caps.AllowedWidgets, role)
		assert.Empty(t, caps.AllowedWidgets, role)
	}
}

func TestResolve_ReturnsIndependentCopies(t *testing.T) {
	first := Resolve(RoleAdmin)
	first.AllowedWidgets[0] = "hacked"
	first.AllowedWidgets = append(first.AllowedWidgets, "extra")
	first.CanDeleteTodo = false

	second := Resolve(RoleAdmin)
	assert.Equal(t, WidgetTeamOverview, second.AllowedWidgets[0])
	assert.Len(t, second.AllowedWidgets, 3)
	assert.True(t, second.CanDeleteTodo)
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  Role
	}{
		{"admin", RoleAdmin},
		{" Member ", RoleMember},
		{"guest", RoleGuest},
		{"owner", RoleGuest},
		{"", RoleGuest},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseRole(c.input), c.input)
	}
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, IsAllowed(RoleAdmin))
	assert.True(t, IsAllowed(RoleMember))
	assert.False(t, IsAllowed(RoleGuest))
	assert.False(t, IsAllowed(Role("root")))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionTodoDelete))
	assert.False(t, HasPermission(RoleMember, PermissionTodoDelete))
	assert.True(t, HasPermission(RoleMember, PermissionAttendancePunch))
	assert.False(t, HasPermission(RoleGuest, PermissionAttendancePunch))
	assert.False(t, HasPermission(RoleGuest, PermissionCalendarView))
	assert.False(t, HasPermission(RoleAdmin, Permission("unknown.permission")))
}
