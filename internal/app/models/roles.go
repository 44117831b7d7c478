package models

// RoleType is the closed set of business roles. A user has exactly one
// role; superuser status is a separate flag and not a role.
type RoleType string

const (
	RoleCounselor        RoleType = "COUNSELOR"
	RoleHRAdmin          RoleType = "HR_ADMIN"
	RoleTrainer          RoleType = "TRAINER"
	RolePlacementOfficer RoleType = "PLACEMENT_OFFICER"
	RoleManager          RoleType = "MANAGER"
)

// AllRoles lists every valid role.
var AllRoles = []RoleType{
	RoleCounselor,
	RoleHRAdmin,
	RoleTrainer,
	RolePlacementOfficer,
	RoleManager,
}

// IsValid reports whether r is a member of the closed role set.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleCounselor, RoleHRAdmin, RoleTrainer, RolePlacementOfficer, RoleManager:
		return true
	}
	return false
}
