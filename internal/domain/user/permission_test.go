package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleOwner, PermissionCalendarManage))
	assert.True(t, HasPermission(RoleAdmin, PermissionCalendarManage))
	assert.True(t, HasPermission(RoleWorker, PermissionCalendarView))
	assert.False(t, HasPermission(RoleWorker, PermissionCalendarManage))
	assert.False(t, HasPermission(RolePending, PermissionCalendarView))
	assert.False(t, HasPermission(Role("intruder"), PermissionCalendarView))
}
