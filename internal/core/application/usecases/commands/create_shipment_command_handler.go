package commands

import (
	"context"
	"fmt"

	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/services"
	"parcel/internal/pkg/errs"
)

// defaultMaxAttempts is the failed-attempt ceiling applied when the tenant
// has not configured one.
const defaultMaxAttempts = 3

// CreateShipmentCommandHandler handles the business logic for shipment
// creation: it validates the branch, resolves and locks the price from the
// tenant's pricing rules, generates a unique tracking number and persists
// the shipment in PENDING status.
type CreateShipmentCommandHandler struct {
	uowFactory CreateShipmentUoWFactory
	resolver   *services.PriceResolver
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation
// operations. Requires a CreateShipmentUoWFactory for transactional
// persistence.
func NewCreateShipmentCommandHandler(uowFactory CreateShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewPriceResolver(),
	}
}

// Handle processes the shipment creation command.
// The resolved price and the tenant's attempt ceiling are copied onto the
// shipment; later rule or settings changes never affect it.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenantRepo := uow.TenantRepository()
	settings, err := tenantRepo.GetSettings(ctx, cmd.TenantID())
	if err != nil {
		return err
	}

	ok, err := tenantRepo.HasActiveBranch(ctx, cmd.TenantID(), cmd.BranchID())
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("branchID",
			fmt.Errorf("branch %s is not an active branch of the tenant", cmd.BranchID()))
	}

	recipient, err := shipment.NewRecipient(
		cmd.Recipient().Name, cmd.Recipient().Phone, cmd.Recipient().Address, cmd.Recipient().Zone)
	if err != nil {
		return err
	}

	rules, err := uow.PricingRuleRepository().GetActiveByZone(ctx, cmd.TenantID(), recipient.Zone())
	if err != nil {
		return err
	}

	quote := h.resolver.Resolve(rules, cmd.MerchantID(), recipient.Zone(), cmd.Weight())
	if !quote.Found {
		return errs.NewBusinessRuleError("price resolution", quote.Reason)
	}

	shipmentRepo := uow.ShipmentRepository()

	generator := services.NewTrackingNumberGenerator(settings.TrackingPrefix)
	trackingNumber, err := generator.Generate(ctx, shipmentRepo)
	if err != nil {
		return err
	}

	maxAttempts := settings.MaxDeliveryAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.TenantID(), cmd.BranchID(), cmd.MerchantID(),
		trackingNumber,
		recipient,
		cmd.Weight(),
		quote.Price, cmd.CODAmount(),
		cmd.Notes(),
		maxAttempts,
		cmd.ActorID(),
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
