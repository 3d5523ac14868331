package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand represents a request to cancel a shipment before
// any courier involvement.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	shipmentID kernel.UUID
	actorID    kernel.UUID
	note       string

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment.
func NewCancelShipmentCommand(tenantID, shipmentID, actorID kernel.UUID, note string) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantID.Validate(),
		shipmentID.Validate(),
		actorID.Validate(),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.shipmentID = shipmentID
	cmd.actorID = actorID
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c CancelShipmentCommand) TenantID() kernel.UUID { return c.tenantID }

// ShipmentID returns the shipment being cancelled.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// ActorID returns the user cancelling the shipment.
func (c CancelShipmentCommand) ActorID() kernel.UUID { return c.actorID }

// Note returns the optional cancellation note for the audit trail.
func (c CancelShipmentCommand) Note() string { return c.note }
