package queries

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery retrieves a shipment's append-only audit trail,
// oldest entry first.
type GetShipmentHistoryQuery struct {
	tenantID   kernel.UUID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentHistoryQuery creates a query for a shipment's audit trail.
func NewGetShipmentHistoryQuery(tenantID, shipmentID kernel.UUID) (GetShipmentHistoryQuery, error) {
	if err := errors.Join(tenantID.Validate(), shipmentID.Validate()); err != nil {
		return GetShipmentHistoryQuery{}, err
	}

	return GetShipmentHistoryQuery{
		tenantID:   tenantID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetShipmentHistoryQuery) TenantID() kernel.UUID { return q.tenantID }

// ShipmentID returns the shipment being queried.
func (q GetShipmentHistoryQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// GetShipmentHistoryQueryResponse represents one audit-trail entry.
type GetShipmentHistoryQueryResponse struct {
	Status     string
	ActorID    kernel.UUID
	Note       string
	OccurredAt time.Time
}
