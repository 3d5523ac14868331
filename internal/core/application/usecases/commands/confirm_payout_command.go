package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrConfirmPayoutCommandIsNotConstructed = errors.New(
	"ConfirmPayoutCommand must be created via NewConfirmPayoutCommand constructor",
)

// ConfirmPayoutCommand represents a request to confirm that a pending
// settlement was paid out to the merchant.
type ConfirmPayoutCommand struct { //nolint:recvcheck //using for validation
	tenantID     kernel.UUID
	settlementID kernel.UUID
	confirmedBy  kernel.UUID
	note         string

	guard guard.ConstructorGuard
}

// NewConfirmPayoutCommand creates a command to confirm a payout.
func NewConfirmPayoutCommand(
	tenantID, settlementID, confirmedBy kernel.UUID,
	note string,
) (ConfirmPayoutCommand, error) {
	cmd := ConfirmPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantID.Validate(),
		settlementID.Validate(),
		confirmedBy.Validate(),
	); err != nil {
		return ConfirmPayoutCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.settlementID = settlementID
	cmd.confirmedBy = confirmedBy
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPayoutCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPayoutCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c ConfirmPayoutCommand) TenantID() kernel.UUID { return c.tenantID }

// SettlementID returns the settlement being confirmed.
func (c ConfirmPayoutCommand) SettlementID() kernel.UUID { return c.settlementID }

// ConfirmedBy returns the user confirming the payout.
func (c ConfirmPayoutCommand) ConfirmedBy() kernel.UUID { return c.confirmedBy }

// Note returns the optional payout note.
func (c ConfirmPayoutCommand) Note() string { return c.note }
