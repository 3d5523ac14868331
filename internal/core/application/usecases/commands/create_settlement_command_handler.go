package commands

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// CreateSettlementCommandHandler handles settlement batch creation. It sums
// the merchant's unsettled COLLECTED records, opens a PENDING settlement
// over that total and re-points the records at it, all in one transaction.
//
// The one-pending-settlement-per-merchant rule is checked up front for a
// friendly conflict error and enforced by the storage layer's partial
// unique index; a concurrent creation for the same merchant that slips past
// the check surfaces as a ConflictError from SettlementRepository.Add.
type CreateSettlementCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewCreateSettlementCommandHandler creates a handler for settlement
// creation operations.
func NewCreateSettlementCommandHandler(uowFactory SettlementUoWFactory) CreateSettlementCommandHandler {
	return CreateSettlementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement creation command.
func (h *CreateSettlementCommandHandler) Handle(ctx context.Context, cmd CreateSettlementCommand) error {
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
	_, err := settlementRepo.GetPendingByMerchant(ctx, cmd.TenantID(), cmd.MerchantID())
	switch {
	case err == nil:
		return errs.NewConflictError("settlement", "merchant already has a pending settlement")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	recordRepo := uow.CODRecordRepository()
	records, err := recordRepo.GetCollectedByMerchant(ctx, cmd.TenantID(), cmd.MerchantID())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errs.NewBusinessRuleError("settlement",
			"merchant has no unsettled COD records")
	}

	var total kernel.Money
	for _, record := range records {
		total = total.Add(record.Amount())
	}

	settlement, err := cod.NewSettlement(
		cmd.SettlementID(), cmd.TenantID(), cmd.MerchantID(), total, cmd.Note())
	if err != nil {
		return err
	}

	if err = settlementRepo.Add(ctx, settlement); err != nil {
		return err
	}

	for _, record := range records {
		if err = record.AttachToSettlement(settlement.ID()); err != nil {
			return err
		}
		if err = recordRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
