package domain

import (
	"errors"
	"time"
)

// Plan is a subscription tier controlling upload quota and feature gates.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanMidPro   Plan = "mid_pro"
	PlanPro      Plan = "pro"
	PlanUltraPro Plan = "ultra_pro"
)

// Valid reports whether p is a known subscription tier.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanMidPro, PlanPro, PlanUltraPro:
		return true
	}
	return false
}

// PlanLimits maps a plan to its daily platform-post ceiling. A plan absent
// from the table is unbounded.
type PlanLimits map[Plan]int

// DefaultPlanLimits returns the production limit table. ultra_pro is
// intentionally absent (unlimited).
func DefaultPlanLimits() PlanLimits {
	return PlanLimits{
		PlanFree:   4,
		PlanMidPro: 16,
		PlanPro:    50,
	}
}

// Limit returns the daily ceiling for a plan. ok is false when the plan is
// unbounded.
func (l PlanLimits) Limit(p Plan) (limit int, ok bool) {
	limit, ok = l[p]
	return limit, ok
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account holder.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Plan         Plan      `json:"plan"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
