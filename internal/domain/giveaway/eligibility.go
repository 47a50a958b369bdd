package giveaway

import (
	"slices"

	"github.com/Porismic/JupiterBot/internal/domain/member"
)

// DenyReason explains a rejected join.
type DenyReason string

const (
	DenyMissingRequiredRole DenyReason = "missing_required_role"
	DenyLevelTooLow         DenyReason = "level_too_low"
	DenyNotEnoughMessages   DenyReason = "not_enough_messages"
)

// Candidate is the snapshot a join is evaluated against.
type Candidate struct {
	Roles []string
	Stats member.Stats
}

// Decision is the result of Evaluate.
type Decision struct {
	Admitted bool
	Reason   DenyReason
}

func admit() Decision { return Decision{Admitted: true} }

func deny(reason DenyReason) Decision { return Decision{Reason: reason} }

// Evaluate checks the role restriction, then the level, then the message
// count, stopping at the first failure. It has no side effects.
func Evaluate(req Requirements, c Candidate) Decision {
	if req.RoleRestricted && len(req.RequiredRoles) > 0 && !holdsAny(c.Roles, req.RequiredRoles) {
		return deny(DenyMissingRequiredRole)
	}

	bypass := holdsAny(c.Roles, req.BypassRoles)

	if req.RequiredLevel > 0 && c.Stats.Level() < req.RequiredLevel && !bypass {
		return deny(DenyLevelTooLow)
	}

	msg := req.RequiredMessages
	if msg.Amount > 0 && c.Stats.Messages(msg.Bucket) < msg.Amount && !bypass {
		return deny(DenyNotEnoughMessages)
	}

	return admit()
}

func holdsAny(held, wanted []string) bool {
	for _, r := range wanted {
		if slices.Contains(held, r) {
			return true
		}
	}
	return false
}
