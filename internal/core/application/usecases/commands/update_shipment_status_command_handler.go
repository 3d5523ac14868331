package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"
)

// UpdateShipmentStatusCommandHandler handles lifecycle transitions. The
// aggregate enforces the transition table, the attempt ceiling and the
// collected-amount rules; the handler's own contribution is the COD ledger
// record written in the same transaction as a COD delivery.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory UpdateStatusUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status-update
// operations.
func NewUpdateShipmentStatusCommandHandler(uowFactory UpdateStatusUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-update command.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	if err = aggregate.UpdateStatus(cmd.Target(), cmd.ActorID(), cmd.Note(), cmd.CODCollected()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Target() == shipment.Delivered && aggregate.CODAmount().IsPositive() {
		if err = h.writeLedgerRecord(ctx, uow, aggregate, cmd); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// writeLedgerRecord creates the COLLECTED ledger record of a COD delivery.
// The aggregate has already validated the collected amount against the COD
// amount.
func (h *UpdateShipmentStatusCommandHandler) writeLedgerRecord(
	ctx context.Context,
	uow UpdateStatusUoW,
	aggregate *shipment.Shipment,
	cmd UpdateShipmentStatusCommand,
) error {
	courierID := aggregate.CourierID()
	if courierID == nil {
		return errs.NewBusinessRuleError("cod collection",
			"delivered shipment has no assigned courier")
	}

	record, err := cod.NewRecord(
		kernel.NewUUID(),
		aggregate.TenantID(),
		aggregate.MerchantID(),
		*courierID,
		aggregate.ID(),
		*cmd.CODCollected(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	return uow.CODRecordRepository().Add(ctx, record)
}
