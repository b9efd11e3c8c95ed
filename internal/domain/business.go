package domain

import "time"

// Plan is a business's subscription tier.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// IsValid reports whether p is a known plan.
func (p Plan) IsValid() bool {
	return p == PlanFree || p == PlanPremium
}

// Business is the tenant boundary: every account and transaction belongs to
// exactly one business, and nothing in posting or recalculation crosses it.
// OwnerID is the identity reference resolved by the caller before this core
// is invoked.
type Business struct {
	ID           string
	OwnerID      string
	Name         string
	BusinessType string
	Plan         Plan

	// Premium profile, empty on the free plan.
	Industry string
	NTN      string
	Address  string
	City     string
	Country  string
	Phone    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields required at registration.
func (b *Business) Validate() error {
	if b.Name == "" {
		return ErrInvalidBusinessName
	}
	if !b.Plan.IsValid() {
		return ErrInvalidPlan
	}
	return nil
}
