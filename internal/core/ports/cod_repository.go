package ports

import (
	"context"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"
)

// CODRecordRepository defines the persistence contract for COD ledger
// records.
type CODRecordRepository interface {
	// Add persists a new COD record. The record is written in the same
	// transaction as the delivery that produced it.
	Add(ctx context.Context, record *cod.Record) error

	// Update persists changes to an existing COD record.
	Update(ctx context.Context, record *cod.Record) error

	// Get retrieves a COD record by its identifier within a tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*cod.Record, error)

	// GetCollectedByMerchant retrieves all COLLECTED records of a
	// merchant that are not yet batched into a settlement, oldest
	// collection first. This is the candidate set of a new settlement.
	GetCollectedByMerchant(ctx context.Context, tenantID, merchantID kernel.UUID) ([]*cod.Record, error)

	// GetBySettlement retrieves all records linked to a settlement.
	GetBySettlement(ctx context.Context, tenantID, settlementID kernel.UUID) ([]*cod.Record, error)
}
