// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment domain aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Tracking numbers are unique across all tenants; the tenant
// index serves the tenant-scoped lookups every read goes through.
type ShipmentDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID  `gorm:"type:uuid;index"`
	BranchID       uuid.UUID  `gorm:"type:uuid"`
	MerchantID     uuid.UUID  `gorm:"type:uuid;index"`
	CourierID      *uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber string     `gorm:"uniqueIndex"`
	RecipientName  string
	RecipientPhone string
	RecipientAddr  string
	RecipientZone  string
	WeightKg       float64
	PriceCents     int64
	CODAmountCents int64
	Notes          string
	MaxAttempts    int
	AttemptCount   int
	Status         int `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// StatusHistoryDTO represents one audit-trail row of a shipment. Rows are
// insert-only.
type StatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Status     int
	ActorID    uuid.UUID `gorm:"type:uuid"`
	Note       string
	OccurredAt time.Time
}

// TableName specifies the database table name for audit-trail rows.
func (StatusHistoryDTO) TableName() string {
	return "shipment_status_history"
}

// fromDomain converts a shipment domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	recipient := aggregate.Recipient()
	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		TenantID:       aggregate.TenantID().Bytes(),
		BranchID:       aggregate.BranchID().Bytes(),
		MerchantID:     aggregate.MerchantID().Bytes(),
		CourierID:      courierID,
		TrackingNumber: aggregate.TrackingNumber(),
		RecipientName:  recipient.Name(),
		RecipientPhone: recipient.Phone(),
		RecipientAddr:  recipient.Address(),
		RecipientZone:  recipient.Zone(),
		WeightKg:       aggregate.Weight().Kilograms(),
		PriceCents:     aggregate.Price().Cents(),
		CODAmountCents: aggregate.CODAmount().Cents(),
		Notes:          aggregate.Notes(),
		MaxAttempts:    aggregate.MaxAttempts(),
		AttemptCount:   aggregate.AttemptCount(),
		Status:         int(aggregate.Status()),
	}
}

// historyFromDomain converts pending audit entries to insertable rows.
func historyFromDomain(shipmentID kernel.UUID, changes []shipment.StatusChange) []StatusHistoryDTO {
	rows := make([]StatusHistoryDTO, 0, len(changes))
	for _, change := range changes {
		rows = append(rows, StatusHistoryDTO{
			ID:         uuid.New(),
			ShipmentID: shipmentID.Bytes(),
			Status:     int(change.Status()),
			ActorID:    change.ActorID().Bytes(),
			Note:       change.Note(),
			OccurredAt: change.OccurredAt(),
		})
	}
	return rows
}

// toDomain converts a database DTO to a shipment domain aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	recipient, err := shipment.NewRecipient(
		dto.RecipientName, dto.RecipientPhone, dto.RecipientAddr, dto.RecipientZone)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, tenantID, branchID, merchantID,
		courierID,
		dto.TrackingNumber,
		recipient,
		weight,
		kernel.MoneyFromCents(dto.PriceCents),
		kernel.MoneyFromCents(dto.CODAmountCents),
		dto.Notes,
		dto.MaxAttempts, dto.AttemptCount,
		shipment.Status(dto.Status),
	)
}

// historyToDomain converts audit-trail rows back to domain entries.
func historyToDomain(rows []StatusHistoryDTO) ([]shipment.StatusChange, error) {
	changes := make([]shipment.StatusChange, 0, len(rows))
	for _, row := range rows {
		actorID, err := kernel.UUIDFromBytes(row.ActorID[:])
		if err != nil {
			return nil, err
		}
		changes = append(changes, shipment.RestoreStatusChange(
			shipment.Status(row.Status), actorID, row.Note, row.OccurredAt))
	}
	return changes, nil
}
