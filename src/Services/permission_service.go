package Services

import (
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"
)

type Resource string

const (
	ResourceRole       Resource = "role"
	ResourceTag        Resource = "tag"
	ResourceSection    Resource = "section"
	ResourceTopic      Resource = "topic"
	ResourceComment    Resource = "comment"
	ResourceLike       Resource = "like"
	ResourceUser       Resource = "user"
	ResourceReputation Resource = "reputation"
	ResourceLog        Resource = "log"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionPatch  Action = "patch"
	ActionDelete Action = "delete"
	ActionRead   Action = "read"
	ActionLock   Action = "lock"
)

type Rule int

const (
	// AdminOnly requires the ROLE_ADMIN authority.
	AdminOnly Rule = iota
	// Authenticated requires any logged-in principal.
	Authenticated
	// OwnerOrAdmin requires the resource's owning user or an admin. An
	// ownerless resource (anonymized author) is admin territory.
	OwnerOrAdmin
	// SelfOrAdmin requires the target user themself or an admin.
	SelfOrAdmin
)

// policy is the single authorization table: resource kind and action decide
// which rule applies. Mutations missing from the table are denied.
var policy = map[Resource]map[Action]Rule{
	ResourceRole: {
		ActionCreate: AdminOnly,
		ActionPatch:  AdminOnly,
		ActionDelete: AdminOnly,
	},
	ResourceTag: {
		ActionCreate: AdminOnly,
		ActionPatch:  AdminOnly,
		ActionDelete: AdminOnly,
	},
	ResourceSection: {
		ActionCreate: AdminOnly,
		ActionPatch:  AdminOnly,
		ActionDelete: AdminOnly,
	},
	ResourceTopic: {
		ActionCreate: Authenticated,
		ActionPatch:  AdminOnly,
		ActionDelete: AdminOnly,
	},
	ResourceComment: {
		ActionCreate: Authenticated,
		ActionPatch:  OwnerOrAdmin,
		ActionDelete: OwnerOrAdmin,
	},
	ResourceLike: {
		ActionCreate: Authenticated,
		ActionDelete: OwnerOrAdmin,
	},
	ResourceUser: {
		ActionPatch:  SelfOrAdmin,
		ActionDelete: SelfOrAdmin,
		ActionLock:   AdminOnly,
	},
	ResourceReputation: {
		ActionCreate: Authenticated,
		ActionDelete: AdminOnly,
	},
	ResourceLog: {
		ActionRead: AdminOnly,
	},
}

// CanMutate consults the policy table. ownerId is the resource's owning (or
// target) user where the rule cares about ownership; nil stands for an
// ownerless resource. Callers must have established that the resource exists
// before asking for authorization.
func CanMutate(p Principal, resource Resource, action Action, ownerId *int64) error {
	actions, ok := policy[resource]
	if !ok {
		return Errors.NotAllowed("Access denied")
	}
	rule, ok := actions[action]
	if !ok {
		return Errors.NotAllowed("Access denied")
	}

	if !p.Authenticated() {
		return Errors.NotAllowed("Access denied")
	}

	switch rule {
	case Authenticated:
		return nil
	case AdminOnly:
		if p.IsAdmin() {
			return nil
		}
	case OwnerOrAdmin, SelfOrAdmin:
		if p.IsAdmin() {
			return nil
		}
		if ownerId != nil && *ownerId == p.Id {
			return nil
		}
	}

	return Errors.NotAllowed("Access denied")
}
