// Package pricingrepo provides data transfer objects and mapping functions
// for pricing-rule persistence.
package pricingrepo

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// RuleDTO represents the database structure for persisting pricing rules.
// A NULL MerchantID marks a tenant-default rule.
type RuleDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID  `gorm:"type:uuid;index:idx_pricing_rules_tenant_zone"`
	MerchantID *uuid.UUID `gorm:"type:uuid;index"`
	Zone       string     `gorm:"index:idx_pricing_rules_tenant_zone"`
	WeightFrom float64
	WeightTo   float64
	PriceCents int64
	Active     bool
	CreatedAt  time.Time
}

// TableName specifies the database table name for pricing rules.
func (RuleDTO) TableName() string {
	return "pricing_rules"
}

// fromDomain converts a pricing rule to its database representation.
func fromDomain(rule *pricing.Rule) RuleDTO {
	var merchantID *uuid.UUID
	if id := rule.MerchantID(); id != nil {
		raw := id.Bytes()
		merchantID = &raw
	}

	return RuleDTO{
		ID:         rule.ID().Bytes(),
		TenantID:   rule.TenantID().Bytes(),
		MerchantID: merchantID,
		Zone:       rule.Zone(),
		WeightFrom: rule.WeightFrom(),
		WeightTo:   rule.WeightTo(),
		PriceCents: rule.Price().Cents(),
		Active:     rule.IsActive(),
		CreatedAt:  rule.CreatedAt(),
	}
}

// toDomain converts a database DTO to a pricing rule using RestoreRule.
func toDomain(dto RuleDTO) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var merchantID *kernel.UUID
	if dto.MerchantID != nil {
		mID, merchantErr := kernel.UUIDFromBytes((*dto.MerchantID)[:])
		if merchantErr != nil {
			return nil, merchantErr
		}
		merchantID = &mID
	}

	return pricing.RestoreRule(
		id, tenantID, merchantID,
		dto.Zone,
		dto.WeightFrom, dto.WeightTo,
		kernel.MoneyFromCents(dto.PriceCents),
		dto.Active,
		dto.CreatedAt,
	)
}
