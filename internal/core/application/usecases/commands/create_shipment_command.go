package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment for
// a merchant. The price is not part of the command; it is resolved from the
// tenant's pricing rules while handling.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(
//	    kernel.NewUUID(), tenantID, branchID, merchantID,
//	    recipient, weight, codAmount, "fragile", actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	tenantID   kernel.UUID
	branchID   kernel.UUID
	merchantID kernel.UUID
	recipient  RecipientInput
	weight     kernel.Weight
	codAmount  kernel.Money
	notes      string
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// RecipientInput carries the recipient contact details of a new shipment.
type RecipientInput struct {
	Name    string
	Phone   string
	Address string
	Zone    string
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Identity references and the weight must be valid; the COD amount may be
// zero for prepaid shipments. Recipient field validation is delegated to
// the shipment aggregate.
func NewCreateShipmentCommand(
	shipmentID, tenantID, branchID, merchantID kernel.UUID,
	recipient RecipientInput,
	weight kernel.Weight,
	codAmount kernel.Money,
	notes string,
	actorID kernel.UUID,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentID.Validate(),
		tenantID.Validate(),
		branchID.Validate(),
		merchantID.Validate(),
		weight.Validate(),
		actorID.Validate(),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.shipmentID = shipmentID
	cmd.tenantID = tenantID
	cmd.branchID = branchID
	cmd.merchantID = merchantID
	cmd.recipient = recipient
	cmd.weight = weight
	cmd.codAmount = codAmount
	cmd.notes = notes
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier the new shipment will carry.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// TenantID returns the tenant scope of the operation.
func (c CreateShipmentCommand) TenantID() kernel.UUID { return c.tenantID }

// BranchID returns the originating branch.
func (c CreateShipmentCommand) BranchID() kernel.UUID { return c.branchID }

// MerchantID returns the merchant the shipment belongs to.
func (c CreateShipmentCommand) MerchantID() kernel.UUID { return c.merchantID }

// Recipient returns the recipient contact details.
func (c CreateShipmentCommand) Recipient() RecipientInput { return c.recipient }

// Weight returns the parcel weight.
func (c CreateShipmentCommand) Weight() kernel.Weight { return c.weight }

// CODAmount returns the cash to collect on delivery, zero for prepaid.
func (c CreateShipmentCommand) CODAmount() kernel.Money { return c.codAmount }

// Notes returns the free-text notes.
func (c CreateShipmentCommand) Notes() string { return c.notes }

// ActorID returns the user creating the shipment.
func (c CreateShipmentCommand) ActorID() kernel.UUID { return c.actorID }
