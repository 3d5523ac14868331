package commands

import (
	"context"
)

// ApproveShipmentCommandHandler handles shipment approval. The transition
// table rejects approval of anything but a PENDING shipment.
type ApproveShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewApproveShipmentCommandHandler creates a handler for shipment approval
// operations.
func NewApproveShipmentCommandHandler(uowFactory ShipmentUoWFactory) ApproveShipmentCommandHandler {
	return ApproveShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h *ApproveShipmentCommandHandler) Handle(ctx context.Context, cmd ApproveShipmentCommand) error {
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

	if err = aggregate.Approve(cmd.ActorID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
