package queries

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentHistoryQueryHandler reads a shipment's audit trail. The join
// against shipments enforces tenant scoping and distinguishes an unknown
// shipment from one with an empty trail.
type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentHistoryQueryHandler creates a handler for audit-trail
// queries. Requires a GORM database connection for query execution.
func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle executes the audit-trail query, oldest entry first.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) ([]GetShipmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM shipments WHERE id = ? AND tenant_id = ?
	`, query.ShipmentID().Bytes(), query.TenantID().Bytes()).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			actor_id,
			note,
			occurred_at
		FROM shipment_status_history
		WHERE shipment_id = ?
		ORDER BY occurred_at ASC
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetShipmentHistoryQueryResponse, 0)
	for rows.Next() {
		var (
			status     int
			actorID    uuid.UUID
			note       string
			occurredAt time.Time
		)

		if err = rows.Scan(&status, &actorID, &note, &occurredAt); err != nil {
			return nil, err
		}

		actor, idErr := kernel.UUIDFromBytes(actorID[:])
		if idErr != nil {
			return nil, idErr
		}

		entries = append(entries, GetShipmentHistoryQueryResponse{
			Status:     shipment.Status(status).String(),
			ActorID:    actor,
			Note:       note,
			OccurredAt: occurredAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
