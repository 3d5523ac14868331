package commands

import (
	"context"
	"time"
)

// ConfirmPayoutCommandHandler handles payout confirmation. It marks the
// settlement PAID and cascades SETTLED onto every linked COD record in the
// same transaction. Confirming an already paid settlement fails with a
// ConflictError from the aggregate.
type ConfirmPayoutCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewConfirmPayoutCommandHandler creates a handler for payout confirmation
// operations.
func NewConfirmPayoutCommandHandler(uowFactory SettlementUoWFactory) ConfirmPayoutCommandHandler {
	return ConfirmPayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payout confirmation command.
func (h *ConfirmPayoutCommandHandler) Handle(ctx context.Context, cmd ConfirmPayoutCommand) error {
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

	settlementRepo := uow.SettlementRepository()
	settlement, err := settlementRepo.Get(ctx, cmd.TenantID(), cmd.SettlementID())
	if err != nil {
		return err
	}

	if err = settlement.ConfirmPayout(cmd.ConfirmedBy(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = settlementRepo.Update(ctx, settlement); err != nil {
		return err
	}

	recordRepo := uow.CODRecordRepository()
	records, err := recordRepo.GetBySettlement(ctx, cmd.TenantID(), settlement.ID())
	if err != nil {
		return err
	}

	for _, record := range records {
		if err = record.MarkSettled(); err != nil {
			return err
		}
		if err = recordRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
