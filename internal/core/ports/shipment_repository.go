// Package ports defines the persistence contracts of the parcel domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Every read and write is tenant-scoped; an aggregate of
// another tenant behaves as if it did not exist.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate together with its pending
	// audit entries in the current transaction.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate and
	// flushes its pending audit entries in the current transaction.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its identifier within a tenant.
	// Returns an ObjectNotFoundError when no such shipment exists for
	// the tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its tracking number
	// within a tenant.
	GetByTrackingNumber(ctx context.Context, tenantID kernel.UUID, trackingNumber string) (*shipment.Shipment, error)

	// TrackingNumberExists reports whether any shipment, in any tenant,
	// already uses the given tracking number. Tracking numbers are
	// globally unique so that labels scanned at shared sorting hubs
	// resolve unambiguously.
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)

	// GetStatusHistory returns the audit trail of a shipment, oldest
	// first.
	GetStatusHistory(ctx context.Context, tenantID, id kernel.UUID) ([]shipment.StatusChange, error)
}
