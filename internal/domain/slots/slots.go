// Package slots models premium auction slot capacity.
package slots

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a user has no slot record yet.
var ErrNotFound = errors.New("slot record not found")

// Record is a user's slot ledger. TotalSlots is the role-based allotment plus
// ManualSlots. UsedSlots may exceed TotalSlots after a role is lost.
type Record struct {
	UserID      string `json:"user_id"`
	TotalSlots  int    `json:"total_slots"`
	UsedSlots   int    `json:"used_slots"`
	ManualSlots int    `json:"manual_slots"`
}

// Available is TotalSlots minus UsedSlots. It is negative while a user holds
// more postings than the current allotment.
func (r Record) Available() int {
	return r.TotalSlots - r.UsedSlots
}

// CanConsume reports whether one more slot may be used.
func (r Record) CanConsume() bool {
	return r.UsedSlots < r.TotalSlots
}

// Repository persists slot records keyed by user id.
type Repository interface {
	Get(ctx context.Context, userID string) (*Record, error)
	Save(ctx context.Context, r *Record) error
}

// Allotment maps roles to slots in two independent tiers.
type Allotment struct {
	booster map[string]int
	level   map[string]int
}

func NewAllotment(booster, level map[string]int) Allotment {
	return Allotment{booster: booster, level: level}
}

// RoleBased sums the best booster role and the best level role. Several roles
// of the same tier never add up.
func (a Allotment) RoleBased(roles []string) int {
	return best(a.booster, roles) + best(a.level, roles)
}

func best(tier map[string]int, roles []string) int {
	top := 0
	for _, r := range roles {
		if v, ok := tier[r]; ok && v > top {
			top = v
		}
	}
	return top
}
