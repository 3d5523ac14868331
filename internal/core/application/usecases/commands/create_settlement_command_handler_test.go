package commands_test

import (
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func collectedRecord(t *testing.T, tenantID, merchantID kernel.UUID, cents int64) *cod.Record {
	t.Helper()
	record, err := cod.NewRecord(
		kernel.NewUUID(), tenantID, merchantID, kernel.NewUUID(), kernel.NewUUID(),
		kernel.MoneyFromCents(cents), time.Now().UTC())
	require.NoError(t, err)
	return record
}

func TestCreateSettlementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	cmd, err := commands.NewCreateSettlementCommand(kernel.NewUUID(), tenantID, merchantID, "weekly payout")
	require.NoError(t, err)

	records := []*cod.Record{
		collectedRecord(t, tenantID, merchantID, 15000),
		collectedRecord(t, tenantID, merchantID, 4050),
	}

	recordRepo := new(MockCODRecordRepository)
	settlementRepo := new(MockSettlementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		settlementRepo.On("GetPendingByMerchant", mock.Anything, tenantID, merchantID).
			Return(nil, errs.NewObjectNotFoundError("settlement", merchantID.String())).Once(),
		uow.On("CODRecordRepository").Return(recordRepo).Once(),
		recordRepo.On("GetCollectedByMerchant", mock.Anything, tenantID, merchantID).
			Return(records, nil).Once(),
		settlementRepo.On("Add", mock.Anything, mock.AnythingOfType("*cod.Settlement")).
			Run(func(args mock.Arguments) {
				settlement := args.Get(1).(*cod.Settlement)
				require.Equal(t, int64(19050), settlement.TotalAmount().Cents())
				require.Equal(t, cod.SettlementPending, settlement.Status())
			}).Return(nil).Once(),
		recordRepo.On("Update", mock.Anything, records[0]).Return(nil).Once(),
		recordRepo.On("Update", mock.Anything, records[1]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateSettlementCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	for _, record := range records {
		require.NotNil(t, record.SettlementID())
		require.True(t, record.SettlementID().IsEqual(cmd.SettlementID()))
		require.Equal(t, cod.Collected, record.Status())
	}
	settlementRepo.AssertExpectations(t)
	recordRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateSettlementCommandHandler_Handle_NoRecords(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	cmd, err := commands.NewCreateSettlementCommand(kernel.NewUUID(), tenantID, merchantID, "")
	require.NoError(t, err)

	recordRepo := new(MockCODRecordRepository)
	settlementRepo := new(MockSettlementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		settlementRepo.On("GetPendingByMerchant", mock.Anything, tenantID, merchantID).
			Return(nil, errs.NewObjectNotFoundError("settlement", merchantID.String())).Once(),
		uow.On("CODRecordRepository").Return(recordRepo).Once(),
		recordRepo.On("GetCollectedByMerchant", mock.Anything, tenantID, merchantID).
			Return([]*cod.Record{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateSettlementCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	uow.AssertExpectations(t)
}

func TestCreateSettlementCommandHandler_Handle_PendingAlreadyExists(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	cmd, err := commands.NewCreateSettlementCommand(kernel.NewUUID(), tenantID, merchantID, "")
	require.NoError(t, err)

	pending, err := cod.NewSettlement(
		kernel.NewUUID(), tenantID, merchantID, kernel.MoneyFromCents(15000), "")
	require.NoError(t, err)

	settlementRepo := new(MockSettlementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		settlementRepo.On("GetPendingByMerchant", mock.Anything, tenantID, merchantID).
			Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateSettlementCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	settlementRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateSettlementCommandHandler_Handle_RaceLosesAtStorage(t *testing.T) {
	// A concurrent creation that slips past the pre-check loses against the
	// partial unique index and surfaces the same conflict error from Add.
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	cmd, err := commands.NewCreateSettlementCommand(kernel.NewUUID(), tenantID, merchantID, "")
	require.NoError(t, err)

	records := []*cod.Record{collectedRecord(t, tenantID, merchantID, 15000)}

	recordRepo := new(MockCODRecordRepository)
	settlementRepo := new(MockSettlementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		settlementRepo.On("GetPendingByMerchant", mock.Anything, tenantID, merchantID).
			Return(nil, errs.NewObjectNotFoundError("settlement", merchantID.String())).Once(),
		uow.On("CODRecordRepository").Return(recordRepo).Once(),
		recordRepo.On("GetCollectedByMerchant", mock.Anything, tenantID, merchantID).
			Return(records, nil).Once(),
		settlementRepo.On("Add", mock.Anything, mock.AnythingOfType("*cod.Settlement")).
			Return(errs.NewConflictError("settlement", "merchant already has a pending settlement")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateSettlementCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}
