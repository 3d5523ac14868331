// Package pricing provides the tenant-scoped price bands used to price a
// shipment at creation time. Rules may overlap; resolution order lives in
// the PriceResolver domain service, not here.
package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrRuleIsNotConstructed is returned when a Rule instance was not created
// through NewRule or RestoreRule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")

// Rule is one tenant-scoped price band: an optional merchant reference
// (nil means tenant default), a zone name, an inclusive weight range and a
// base price. A shipment's price is locked at creation; later rule changes
// never affect issued shipments.
type Rule struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	merchantID *kernel.UUID
	zone       string
	weightFrom float64
	weightTo   float64
	price      kernel.Money
	active     bool
	createdAt  time.Time

	isConstructed bool
}

// NewRule creates an active pricing rule. merchantID nil makes the rule a
// tenant default.
func NewRule(
	id, tenantID kernel.UUID,
	merchantID *kernel.UUID,
	zone string,
	weightFrom, weightTo float64,
	price kernel.Money,
	createdAt time.Time,
) (*Rule, error) {
	r := &Rule{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
	); err != nil {
		return nil, err
	}

	if merchantID != nil {
		if err := merchantID.Validate(); err != nil {
			return nil, err
		}
	}
	if zone == "" {
		return nil, errs.NewValueIsRequiredError("zone")
	}
	if weightFrom < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"weightFrom", fmt.Errorf("%.2f is negative", weightFrom))
	}
	if weightTo < weightFrom {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"weightTo", fmt.Errorf("%.2f is below weightFrom %.2f", weightTo, weightFrom))
	}
	if !price.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is not greater than 0", price))
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	r.id = id
	r.tenantID = tenantID
	r.merchantID = merchantID
	r.zone = zone
	r.weightFrom = weightFrom
	r.weightTo = weightTo
	r.price = price
	r.createdAt = createdAt

	return r, nil
}

// RestoreRule reconstructs a rule from persistence, including its active
// flag.
func RestoreRule(
	id, tenantID kernel.UUID,
	merchantID *kernel.UUID,
	zone string,
	weightFrom, weightTo float64,
	price kernel.Money,
	active bool,
	createdAt time.Time,
) (*Rule, error) {
	r, err := NewRule(id, tenantID, merchantID, zone, weightFrom, weightTo, price, createdAt)
	if err != nil {
		return nil, err
	}
	r.active = active
	return r, nil
}

// Validate ensures the Rule was created through a constructor.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID { return r.id }

// TenantID returns the owning tenant.
func (r *Rule) TenantID() kernel.UUID { return r.tenantID }

// MerchantID returns the merchant the rule is scoped to, or nil for a
// tenant default.
func (r *Rule) MerchantID() *kernel.UUID { return r.merchantID }

// Zone returns the zone (city name) the rule prices.
func (r *Rule) Zone() string { return r.zone }

// WeightFrom returns the inclusive lower bound of the weight band.
func (r *Rule) WeightFrom() float64 { return r.weightFrom }

// WeightTo returns the inclusive upper bound of the weight band.
func (r *Rule) WeightTo() float64 { return r.weightTo }

// Price returns the base price of the band.
func (r *Rule) Price() kernel.Money { return r.price }

// IsActive reports whether the rule participates in resolution.
func (r *Rule) IsActive() bool { return r.active }

// CreatedAt returns the rule's creation time; among matching rules the
// most recently created one wins.
func (r *Rule) CreatedAt() time.Time { return r.createdAt }

// IsMerchantScoped reports whether the rule targets a specific merchant.
func (r *Rule) IsMerchantScoped() bool { return r.merchantID != nil }

// Matches reports whether an active rule covers the given zone and weight.
// Zone comparison is case-insensitive; both weight band ends are inclusive.
func (r *Rule) Matches(zone string, weight kernel.Weight) bool {
	if !r.active {
		return false
	}
	if !strings.EqualFold(r.zone, zone) {
		return false
	}
	return weight.Between(r.weightFrom, r.weightTo)
}

// AppliesTo reports whether the rule may price a shipment of the given
// merchant: either it is scoped to that merchant or it is a tenant default.
func (r *Rule) AppliesTo(merchantID kernel.UUID) bool {
	if r.merchantID == nil {
		return true
	}
	return r.merchantID.IsEqual(merchantID)
}

// Deactivate withdraws the rule from resolution. Issued shipments keep
// their locked price.
func (r *Rule) Deactivate() {
	r.active = false
}
