// Package policy decides which rows of which resource a subject may see
// or write. Decisions are pure lookups over a closed (resource, role)
// table; anything outside the table resolves to no rows, never to an
// error and never to all rows.
package policy

import "github.com/sandesh/institutecrm/internal/app/models"

// Resource identifies a protected entity type.
type Resource string

const (
	ResourceInquiry    Resource = "inquiry"
	ResourceBatch      Resource = "batch"
	ResourceStudent    Resource = "student"
	ResourceFee        Resource = "fee"
	ResourceAttendance Resource = "attendance"
	ResourceOutreach   Resource = "outreach"
	ResourceUser       Resource = "user"
)

// Action classifies an operation against a resource.
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Scope is the row-filtering result of a policy decision.
type Scope int

const (
	// ScopeNone grants no rows: empty lists, not-found reads, forbidden creates.
	ScopeNone Scope = iota
	// ScopeOwn restricts to rows owned by the subject (ownership column
	// depends on the resource: inquiry.created_by, batch.trainer_id,
	// attendance -> batch.trainer_id, outreach.officer_id).
	ScopeOwn
	// ScopeAll grants every row.
	ScopeAll
)

// Subject is the authenticated caller as seen by the policy.
type Subject struct {
	ID          int64
	Role        models.RoleType
	IsSuperuser bool
}

// readGrants maps (resource, role) to the scope for list/retrieve.
var readGrants = map[Resource]map[models.RoleType]Scope{
	ResourceInquiry: {
		models.RoleCounselor: ScopeOwn,
		models.RoleHRAdmin:   ScopeAll,
		models.RoleManager:   ScopeAll,
	},
	ResourceBatch: {
		models.RoleHRAdmin: ScopeAll,
		models.RoleTrainer: ScopeOwn,
		models.RoleManager: ScopeAll,
	},
	ResourceStudent: {
		models.RoleCounselor:        ScopeAll,
		models.RoleHRAdmin:          ScopeAll,
		models.RoleTrainer:          ScopeAll,
		models.RolePlacementOfficer: ScopeAll,
		models.RoleManager:          ScopeAll,
	},
	ResourceFee: {
		models.RoleCounselor:        ScopeAll,
		models.RoleHRAdmin:          ScopeAll,
		models.RoleTrainer:          ScopeAll,
		models.RolePlacementOfficer: ScopeAll,
		models.RoleManager:          ScopeAll,
	},
	ResourceAttendance: {
		models.RoleHRAdmin: ScopeAll,
		models.RoleTrainer: ScopeOwn,
		models.RoleManager: ScopeAll,
	},
	ResourceOutreach: {
		models.RoleHRAdmin:          ScopeAll,
		models.RolePlacementOfficer: ScopeOwn,
		models.RoleManager:          ScopeAll,
	},
	// Every authenticated user may list users (for lead assignment and
	// trainer pickers); writes are superuser-only, see writeGrants.
	ResourceUser: {
		models.RoleCounselor:        ScopeAll,
		models.RoleHRAdmin:          ScopeAll,
		models.RoleTrainer:          ScopeAll,
		models.RolePlacementOfficer: ScopeAll,
		models.RoleManager:          ScopeAll,
	},
}

// writeGrants maps (resource, role) to the scope for create/update/delete.
var writeGrants = map[Resource]map[models.RoleType]Scope{
	ResourceInquiry: {
		models.RoleCounselor: ScopeOwn,
		models.RoleHRAdmin:   ScopeAll,
		models.RoleManager:   ScopeAll,
	},
	ResourceBatch: {
		models.RoleHRAdmin: ScopeAll,
		models.RoleTrainer: ScopeOwn,
		models.RoleManager: ScopeAll,
	},
	ResourceStudent: {
		models.RoleCounselor:        ScopeAll,
		models.RoleHRAdmin:          ScopeAll,
		models.RoleTrainer:          ScopeAll,
		models.RolePlacementOfficer: ScopeAll,
		models.RoleManager:          ScopeAll,
	},
	ResourceFee: {
		models.RoleCounselor:        ScopeAll,
		models.RoleHRAdmin:          ScopeAll,
		models.RoleTrainer:          ScopeAll,
		models.RolePlacementOfficer: ScopeAll,
		models.RoleManager:          ScopeAll,
	},
	ResourceAttendance: {
		models.RoleHRAdmin: ScopeAll,
		models.RoleTrainer: ScopeOwn,
		models.RoleManager: ScopeAll,
	},
	ResourceOutreach: {
		models.RoleHRAdmin:          ScopeAll,
		models.RolePlacementOfficer: ScopeOwn,
		models.RoleManager:          ScopeAll,
	},
	// No role writes users; only superusers manage accounts.
	ResourceUser: {},
}

// Decide returns the scope granted to the subject for the given resource
// and action. Superuser status overrides every role restriction.
func Decide(sub Subject, res Resource, action Action) Scope {
	if sub.IsSuperuser {
		return ScopeAll
	}

	var grants map[Resource]map[models.RoleType]Scope
	switch action {
	case ActionList, ActionRead:
		grants = readGrants
	case ActionCreate, ActionUpdate, ActionDelete:
		grants = writeGrants
	default:
		return ScopeNone
	}

	byRole, ok := grants[res]
	if !ok {
		return ScopeNone
	}
	return byRole[sub.Role]
}

// CanCreate reports whether the subject may create rows of the resource.
func CanCreate(sub Subject, res Resource) bool {
	return Decide(sub, res, ActionCreate) != ScopeNone
}

// OwnerFilter converts a read decision into an optional owner predicate:
// nil means unrestricted, a non-nil pointer restricts rows to that owner
// id, and ok=false means the subject gets no rows at all.
func OwnerFilter(sub Subject, res Resource, action Action) (owner *int64, ok bool) {
	switch Decide(sub, res, action) {
	case ScopeAll:
		return nil, true
	case ScopeOwn:
		id := sub.ID
		return &id, true
	default:
		return nil, false
	}
}
