package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to assign a courier to a
// shipment that is ready for pickup.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	shipmentID kernel.UUID
	courierID  kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier.
func NewAssignCourierCommand(tenantID, shipmentID, courierID, actorID kernel.UUID) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantID.Validate(),
		shipmentID.Validate(),
		courierID.Validate(),
		actorID.Validate(),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.shipmentID = shipmentID
	cmd.courierID = courierID
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c AssignCourierCommand) TenantID() kernel.UUID { return c.tenantID }

// ShipmentID returns the shipment being assigned.
func (c AssignCourierCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// CourierID returns the courier taking the shipment.
func (c AssignCourierCommand) CourierID() kernel.UUID { return c.courierID }

// ActorID returns the user performing the assignment.
func (c AssignCourierCommand) ActorID() kernel.UUID { return c.actorID }
