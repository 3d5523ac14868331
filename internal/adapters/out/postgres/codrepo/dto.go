// Package codrepo provides data transfer objects and mapping functions for
// COD ledger persistence.
package codrepo

import (
	"time"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting COD ledger
// records. The unique index on ShipmentID enforces the one-record-per-
// delivered-shipment rule at the storage level.
type RecordDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID  `gorm:"type:uuid;index"`
	MerchantID   uuid.UUID  `gorm:"type:uuid;index"`
	CourierID    uuid.UUID  `gorm:"type:uuid"`
	ShipmentID   uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	AmountCents  int64
	CollectedAt  time.Time
	Status       int        `gorm:"index"`
	SettlementID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for COD records.
func (RecordDTO) TableName() string {
	return "cod_records"
}

// fromDomain converts a COD record aggregate to its database representation.
func fromDomain(record *cod.Record) RecordDTO {
	var settlementID *uuid.UUID
	if id := record.SettlementID(); id != nil {
		raw := id.Bytes()
		settlementID = &raw
	}

	return RecordDTO{
		ID:           record.ID().Bytes(),
		TenantID:     record.TenantID().Bytes(),
		MerchantID:   record.MerchantID().Bytes(),
		CourierID:    record.CourierID().Bytes(),
		ShipmentID:   record.ShipmentID().Bytes(),
		AmountCents:  record.Amount().Cents(),
		CollectedAt:  record.CollectedAt(),
		Status:       int(record.Status()),
		SettlementID: settlementID,
	}
}

// toDomain converts a database DTO to a COD record aggregate using
// RestoreRecord.
func toDomain(dto RecordDTO) (*cod.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var settlementID *kernel.UUID
	if dto.SettlementID != nil {
		sID, settlementErr := kernel.UUIDFromBytes((*dto.SettlementID)[:])
		if settlementErr != nil {
			return nil, settlementErr
		}
		settlementID = &sID
	}

	return cod.RestoreRecord(
		id, tenantID, merchantID, courierID, shipmentID,
		kernel.MoneyFromCents(dto.AmountCents),
		dto.CollectedAt,
		cod.RecordStatus(dto.Status),
		settlementID,
	)
}
