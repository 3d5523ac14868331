package ports

import (
	"context"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"
)

// SettlementRepository defines the persistence contract for settlement
// batches.
//
// The storage enforces at most one PENDING settlement per merchant with a
// partial unique index; Add translates that violation into a
// ConflictError, which closes the race between two concurrent settlement
// creations for the same merchant.
type SettlementRepository interface {
	// Add persists a new settlement batch. Returns a ConflictError when
	// the merchant already has a PENDING settlement.
	Add(ctx context.Context, settlement *cod.Settlement) error

	// Update persists changes to an existing settlement batch.
	Update(ctx context.Context, settlement *cod.Settlement) error

	// Get retrieves a settlement by its identifier within a tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*cod.Settlement, error)

	// GetPendingByMerchant retrieves the merchant's PENDING settlement.
	// Returns an ObjectNotFoundError when none exists.
	GetPendingByMerchant(ctx context.Context, tenantID, merchantID kernel.UUID) (*cod.Settlement, error)
}
