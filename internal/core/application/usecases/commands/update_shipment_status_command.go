package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a
// new lifecycle status. Delivering a COD-bearing shipment additionally
// carries the collected amount.
//
// Example:
//
//	collected, _ := kernel.NewMoneyFromFloat(149.99)
//	cmd, err := NewUpdateShipmentStatusCommand(
//	    tenantID, shipmentID, shipment.Delivered, actorID, "left at door", &collected)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateShipmentStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	tenantID     kernel.UUID
	shipmentID   kernel.UUID
	target       shipment.Status
	actorID      kernel.UUID
	note         string
	codCollected *kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to change a shipment's
// status. The target must be a valid status value; whether the transition
// is legal from the current status is decided by the aggregate.
func NewUpdateShipmentStatusCommand(
	tenantID, shipmentID kernel.UUID,
	target shipment.Status,
	actorID kernel.UUID,
	note string,
	codCollected *kernel.Money,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantID.Validate(),
		shipmentID.Validate(),
		target.Validate(),
		actorID.Validate(),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.shipmentID = shipmentID
	cmd.target = target
	cmd.actorID = actorID
	cmd.note = note
	cmd.codCollected = codCollected

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c UpdateShipmentStatusCommand) TenantID() kernel.UUID { return c.tenantID }

// ShipmentID returns the shipment being updated.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Target returns the requested lifecycle status.
func (c UpdateShipmentStatusCommand) Target() shipment.Status { return c.target }

// ActorID returns the user triggering the change.
func (c UpdateShipmentStatusCommand) ActorID() kernel.UUID { return c.actorID }

// Note returns the optional free-text note for the audit trail.
func (c UpdateShipmentStatusCommand) Note() string { return c.note }

// CODCollected returns the cash the courier collected, nil when the
// transition carries no collection.
func (c UpdateShipmentStatusCommand) CODCollected() *kernel.Money { return c.codCollected }
