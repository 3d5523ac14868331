package ports

import (
	"context"

	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier
// aggregates. Couriers are reference data for assignment validation; the
// parcel system does not manage their full lifecycle.
type CourierRepository interface {
	// Add persists a new courier aggregate.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its identifier within a tenant.
	// Returns an ObjectNotFoundError when no such courier exists for
	// the tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*courier.Courier, error)
}
