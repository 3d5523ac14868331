package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrApproveShipmentCommandIsNotConstructed = errors.New(
	"ApproveShipmentCommand must be created via NewApproveShipmentCommand constructor",
)

// ApproveShipmentCommand represents a request to approve a pending shipment
// for pickup, moving it from PENDING to READY_FOR_PICKUP.
type ApproveShipmentCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveShipmentCommand creates a command to approve a shipment.
func NewApproveShipmentCommand(tenantID, shipmentID, actorID kernel.UUID) (ApproveShipmentCommand, error) {
	cmd := ApproveShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantID.Validate(),
		shipmentID.Validate(),
		actorID.Validate(),
	); err != nil {
		return ApproveShipmentCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.shipmentID = shipmentID
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrApproveShipmentCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c ApproveShipmentCommand) TenantID() kernel.UUID { return c.tenantID }

// ShipmentID returns the shipment being approved.
func (c ApproveShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// ActorID returns the user approving the shipment.
func (c ApproveShipmentCommand) ActorID() kernel.UUID { return c.actorID }
