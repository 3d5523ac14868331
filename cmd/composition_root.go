package cmd

import (
	"parcel/internal/adapters/out/postgres"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.CreateShipmentUoWFactory = FuncCreateShipmentUoWFactory(func() commands.CreateShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveShipmentCommandHandler() commands.ApproveShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignCourierUoWFactory = FuncAssignCourierUoWFactory(func() commands.AssignCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.UpdateStatusUoWFactory = FuncUpdateStatusUoWFactory(func() commands.UpdateStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateSettlementCommandHandler() commands.CreateSettlementCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSettlementCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPayoutCommandHandler() commands.ConfirmPayoutCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPayoutCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMerchantBalanceQueryHandler() queries.GetMerchantBalanceQueryHandler {
	return queries.NewGetMerchantBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculatePriceQueryHandler() queries.CalculatePriceQueryHandler {
	return queries.NewCalculatePriceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUnsettledMerchantsQueryHandler() queries.ListUnsettledMerchantsQueryHandler {
	return queries.NewListUnsettledMerchantsQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCreateShipmentUoWFactory func() commands.CreateShipmentUoW

func (f FuncCreateShipmentUoWFactory) Create() commands.CreateShipmentUoW {
	return f()
}

type FuncAssignCourierUoWFactory func() commands.AssignCourierUoW

func (f FuncAssignCourierUoWFactory) Create() commands.AssignCourierUoW {
	return f()
}

type FuncUpdateStatusUoWFactory func() commands.UpdateStatusUoW

func (f FuncUpdateStatusUoWFactory) Create() commands.UpdateStatusUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
