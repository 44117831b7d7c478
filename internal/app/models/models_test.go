package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleTypeIsValid(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, role.IsValid(), "role %s", role)
	}
	assert.False(t, RoleType("INTERN").IsValid())
	assert.False(t, RoleType("counselor").IsValid())
	assert.False(t, RoleType("").IsValid())
}

func TestStudentStatusIsValid(t *testing.T) {
	assert.True(t, StudentActive.IsValid())
	assert.True(t, StudentCompleted.IsValid())
	assert.True(t, StudentDropped.IsValid())
	assert.False(t, StudentStatus("PAUSED").IsValid())
	assert.False(t, StudentStatus("active").IsValid())
}

func TestFeeModeIsValid(t *testing.T) {
	for _, mode := range []FeeMode{FeeModeCash, FeeModeUPI, FeeModeNEFT, FeeModeRTGS, FeeModeCheque} {
		assert.True(t, mode.IsValid(), "mode %s", mode)
	}
	assert.False(t, FeeMode("BARTER").IsValid())
	assert.False(t, FeeMode("").IsValid())
}

func TestAttendanceStatusIsValid(t *testing.T) {
	assert.True(t, PresentOnline.IsValid())
	assert.True(t, PresentOffline.IsValid())
	assert.True(t, Absent.IsValid())
	// Close-but-wrong spellings are rejected, not coerced.
	assert.False(t, AttendanceStatus("PRESENT").IsValid())
	assert.False(t, AttendanceStatus("ONLINE").IsValid())
}

func TestIsValidCourse(t *testing.T) {
	for _, course := range Courses {
		assert.True(t, IsValidCourse(course), "course %s", course)
	}
	assert.False(t, IsValidCourse("Basket Weaving"))
	assert.False(t, IsValidCourse("java"))
	assert.False(t, IsValidCourse(""))
}

func TestOutreachModeIsValid(t *testing.T) {
	for _, mode := range []OutreachMode{OutreachCall, OutreachEmail, OutreachLinkedIn, OutreachVisit} {
		assert.True(t, mode.IsValid(), "mode %s", mode)
	}
	assert.False(t, OutreachMode("FAX").IsValid())
}
