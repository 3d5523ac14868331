// Package settlementrepo provides data transfer objects and mapping
// functions for settlement persistence.
package settlementrepo

import (
	"time"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SettlementDTO represents the database structure for persisting settlement
// batches.
//
// The partial unique index on MerchantID covers only PENDING rows
// (cod.SettlementPending = 1) and is what makes "at most one pending
// settlement per merchant" hold under concurrent creation. Two transactions
// inserting for the same merchant cannot both commit; the loser surfaces a
// unique-violation error that the repository maps to a ConflictError.
type SettlementDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID `gorm:"type:uuid;index"`
	MerchantID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_settlements_pending_merchant,where:status = 1"`
	TotalAmountCents int64
	Status           int
	Note             string
	ConfirmedBy      *uuid.UUID `gorm:"type:uuid"`
	ConfirmedAt      *time.Time
}

// TableName specifies the database table name for settlement batches.
func (SettlementDTO) TableName() string {
	return "settlements"
}

// fromDomain converts a settlement aggregate to its database representation.
func fromDomain(settlement *cod.Settlement) SettlementDTO {
	var confirmedBy *uuid.UUID
	if id := settlement.ConfirmedBy(); id != nil {
		raw := id.Bytes()
		confirmedBy = &raw
	}

	return SettlementDTO{
		ID:               settlement.ID().Bytes(),
		TenantID:         settlement.TenantID().Bytes(),
		MerchantID:       settlement.MerchantID().Bytes(),
		TotalAmountCents: settlement.TotalAmount().Cents(),
		Status:           int(settlement.Status()),
		Note:             settlement.Note(),
		ConfirmedBy:      confirmedBy,
		ConfirmedAt:      settlement.ConfirmedAt(),
	}
}

// toDomain converts a database DTO to a settlement aggregate using
// RestoreSettlement.
func toDomain(dto SettlementDTO) (*cod.Settlement, error) {
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

	var confirmedBy *kernel.UUID
	if dto.ConfirmedBy != nil {
		cID, confirmedErr := kernel.UUIDFromBytes((*dto.ConfirmedBy)[:])
		if confirmedErr != nil {
			return nil, confirmedErr
		}
		confirmedBy = &cID
	}

	return cod.RestoreSettlement(
		id, tenantID, merchantID,
		kernel.MoneyFromCents(dto.TotalAmountCents),
		cod.SettlementStatus(dto.Status),
		dto.Note,
		confirmedBy,
		dto.ConfirmedAt,
	)
}
