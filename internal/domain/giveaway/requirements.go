package giveaway

import (
	"slices"

	"github.com/Porismic/JupiterBot/internal/domain/member"
)

// MessageRequirement asks for Amount messages in the given bucket. Amount 0
// disables the check.
type MessageRequirement struct {
	Bucket member.Bucket `json:"bucket,omitempty"`
	Amount int64         `json:"amount"`
}

// ExtraEntryRole gives holders of RoleID a weight of Entries.
type ExtraEntryRole struct {
	RoleID  string `json:"role_id"`
	Entries int    `json:"entries"`
}

// Requirements is the eligibility configuration of a giveaway.
//
// RequiredRoles has OR semantics. BypassRoles waive the level and message
// checks but never the role restriction. ExtraEntryRoles are scanned in
// order and the first match wins.
type Requirements struct {
	RoleRestricted   bool               `json:"role_restricted"`
	RequiredRoles    []string           `json:"required_roles"`
	RequiredLevel    int                `json:"required_level"`
	RequiredMessages MessageRequirement `json:"required_messages"`
	BypassRoles      []string           `json:"bypass_roles"`
	ExtraEntryRoles  []ExtraEntryRole   `json:"extra_entry_roles"`
}

// AddRequiredRole enables the role restriction and adds the role once.
func (r *Requirements) AddRequiredRole(roleID string) {
	r.RoleRestricted = true
	if !slices.Contains(r.RequiredRoles, roleID) {
		r.RequiredRoles = append(r.RequiredRoles, roleID)
	}
}

func (r *Requirements) AddBypassRole(roleID string) {
	if !slices.Contains(r.BypassRoles, roleID) {
		r.BypassRoles = append(r.BypassRoles, roleID)
	}
}

// SetExtraEntries drops any previous entry for the role and appends the new
// one, so a reconfigured role moves to the end of the scan order.
func (r *Requirements) SetExtraEntries(roleID string, entries int) {
	r.ExtraEntryRoles = slices.DeleteFunc(r.ExtraEntryRoles, func(e ExtraEntryRole) bool {
		return e.RoleID == roleID
	})
	r.ExtraEntryRoles = append(r.ExtraEntryRoles, ExtraEntryRole{RoleID: roleID, Entries: entries})
}

// ExtraEntries returns the entry count of the first configured role the
// member holds.
func (r Requirements) ExtraEntries(roles []string) (int, bool) {
	for _, e := range r.ExtraEntryRoles {
		if slices.Contains(roles, e.RoleID) {
			return e.Entries, true
		}
	}
	return 0, false
}
