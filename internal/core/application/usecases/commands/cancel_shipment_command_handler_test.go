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

func TestCancelShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := restoreShipment(t, tenantID, shipment.Pending, 0, nil)

	cmd, err := commands.NewCancelShipmentCommand(
		tenantID, aggregate.ID(), kernel.NewUUID(), "merchant request")
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

	h := commands.NewCancelShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, shipment.Cancelled, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_AfterPickup(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	aggregate := restoreShipment(t, tenantID, shipment.PickedUp, 0, &courierID)

	cmd, err := commands.NewCancelShipmentCommand(tenantID, aggregate.ID(), kernel.NewUUID(), "")
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

	h := commands.NewCancelShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, shipment.PickedUp, aggregate.Status())
	uow.AssertExpectations(t)
}
