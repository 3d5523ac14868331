package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
)

// PricingRuleRepository defines the persistence contract for pricing
// rules. Resolution logic lives in the PriceResolver domain service; the
// repository only narrows the candidate set.
type PricingRuleRepository interface {
	// Add persists a new pricing rule.
	Add(ctx context.Context, rule *pricing.Rule) error

	// Update persists changes to an existing pricing rule.
	Update(ctx context.Context, rule *pricing.Rule) error

	// Get retrieves a pricing rule by its identifier within a tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*pricing.Rule, error)

	// GetActiveByZone retrieves the tenant's active rules for a zone,
	// both merchant-scoped and tenant defaults. The zone match is
	// case-insensitive.
	GetActiveByZone(ctx context.Context, tenantID kernel.UUID, zone string) ([]*pricing.Rule, error)
}
