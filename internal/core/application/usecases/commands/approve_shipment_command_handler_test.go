package commands_test

import (
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := restoreShipment(t, tenantID, shipment.Pending, 0, nil)

	cmd, err := commands.NewApproveShipmentCommand(tenantID, aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, shipment.ReadyForPickup, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestApproveShipmentCommandHandler_Handle_AlreadyApproved(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := restoreShipment(t, tenantID, shipment.ReadyForPickup, 0, nil)

	cmd, err := commands.NewApproveShipmentCommand(tenantID, aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
