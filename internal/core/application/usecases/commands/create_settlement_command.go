package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrCreateSettlementCommandIsNotConstructed = errors.New(
	"CreateSettlementCommand must be created via NewCreateSettlementCommand constructor",
)

// CreateSettlementCommand represents a request to batch a merchant's
// unsettled COD records into a pending settlement.
type CreateSettlementCommand struct { //nolint:recvcheck //using for validation
	settlementID kernel.UUID
	tenantID     kernel.UUID
	merchantID   kernel.UUID
	note         string

	guard guard.ConstructorGuard
}

// NewCreateSettlementCommand creates a command to open a settlement batch.
func NewCreateSettlementCommand(
	settlementID, tenantID, merchantID kernel.UUID,
	note string,
) (CreateSettlementCommand, error) {
	cmd := CreateSettlementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		settlementID.Validate(),
		tenantID.Validate(),
		merchantID.Validate(),
	); err != nil {
		return CreateSettlementCommand{}, err
	}

	cmd.settlementID = settlementID
	cmd.tenantID = tenantID
	cmd.merchantID = merchantID
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSettlementCommand) Validate() error {
	return c.guard.Validate(ErrCreateSettlementCommandIsNotConstructed)
}

// SettlementID returns the identifier the new settlement will carry.
func (c CreateSettlementCommand) SettlementID() kernel.UUID { return c.settlementID }

// TenantID returns the tenant scope of the operation.
func (c CreateSettlementCommand) TenantID() kernel.UUID { return c.tenantID }

// MerchantID returns the merchant being settled.
func (c CreateSettlementCommand) MerchantID() kernel.UUID { return c.merchantID }

// Note returns the optional free-text note.
func (c CreateSettlementCommand) Note() string { return c.note }
