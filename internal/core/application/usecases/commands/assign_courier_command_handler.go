package commands

import (
	"context"
	"fmt"

	"parcel/internal/pkg/errs"
)

// AssignCourierCommandHandler handles courier assignment. The courier must
// be active and work from the shipment's branch; the transition table
// rejects assignment of anything but a READY_FOR_PICKUP shipment.
type AssignCourierCommandHandler struct {
	uowFactory AssignCourierUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment
// operations.
func NewAssignCourierCommandHandler(uowFactory AssignCourierUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.TenantID(), cmd.ShipmentID())
	if err != nil {
		return err
	}

	assignee, err := uow.CourierRepository().Get(ctx, cmd.TenantID(), cmd.CourierID())
	if err != nil {
		return err
	}

	if !assignee.CanCarry(aggregate.BranchID()) {
		return errs.NewBusinessRuleError("courier assignment", fmt.Sprintf(
			"courier %s is inactive or does not belong to branch %s",
			assignee.ID(), aggregate.BranchID()))
	}

	if err = aggregate.AssignCourier(cmd.CourierID(), cmd.ActorID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
