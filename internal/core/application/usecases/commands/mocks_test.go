package commands_test

import (
	"context"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingNumber(
	ctx context.Context, tenantID kernel.UUID, trackingNumber string,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, tenantID, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Bool(0), args.Error(1)
}
func (m *MockShipmentRepository) GetStatusHistory(
	ctx context.Context, tenantID, id kernel.UUID,
) ([]shipment.StatusChange, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipment.StatusChange), args.Error(1)
}

type MockCODRecordRepository struct{ mock.Mock }

func (m *MockCODRecordRepository) Add(ctx context.Context, r *cod.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockCODRecordRepository) Update(ctx context.Context, r *cod.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockCODRecordRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*cod.Record, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cod.Record), args.Error(1)
}
func (m *MockCODRecordRepository) GetCollectedByMerchant(
	ctx context.Context, tenantID, merchantID kernel.UUID,
) ([]*cod.Record, error) {
	args := m.Called(ctx, tenantID, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cod.Record), args.Error(1)
}
func (m *MockCODRecordRepository) GetBySettlement(
	ctx context.Context, tenantID, settlementID kernel.UUID,
) ([]*cod.Record, error) {
	args := m.Called(ctx, tenantID, settlementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cod.Record), args.Error(1)
}

type MockSettlementRepository struct{ mock.Mock }

func (m *MockSettlementRepository) Add(ctx context.Context, s *cod.Settlement) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSettlementRepository) Update(ctx context.Context, s *cod.Settlement) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSettlementRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*cod.Settlement, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cod.Settlement), args.Error(1)
}
func (m *MockSettlementRepository) GetPendingByMerchant(
	ctx context.Context, tenantID, merchantID kernel.UUID,
) (*cod.Settlement, error) {
	args := m.Called(ctx, tenantID, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cod.Settlement), args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) Add(ctx context.Context, r *pricing.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockPricingRuleRepository) Update(ctx context.Context, r *pricing.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockPricingRuleRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*pricing.Rule, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Rule), args.Error(1)
}
func (m *MockPricingRuleRepository) GetActiveByZone(
	ctx context.Context, tenantID kernel.UUID, zone string,
) ([]*pricing.Rule, error) {
	args := m.Called(ctx, tenantID, zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.Rule), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockTenantRepository struct{ mock.Mock }

func (m *MockTenantRepository) GetSettings(ctx context.Context, tenantID kernel.UUID) (ports.TenantSettings, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(ports.TenantSettings), args.Error(1)
}
func (m *MockTenantRepository) HasActiveBranch(ctx context.Context, tenantID, branchID kernel.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, branchID)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every command unit-of-work interface so tests share one
// transaction mock.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) CODRecordRepository() ports.CODRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.CODRecordRepository)
}
func (m *MockUoW) SettlementRepository() ports.SettlementRepository {
	args := m.Called()
	return args.Get(0).(ports.SettlementRepository)
}
func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRuleRepository)
}
func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}
func (m *MockUoW) TenantRepository() ports.TenantRepository {
	args := m.Called()
	return args.Get(0).(ports.TenantRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCreateShipmentUoWFactory struct{ mock.Mock }

func (m *MockCreateShipmentUoWFactory) Create() commands.CreateShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateShipmentUoW)
}

type MockAssignCourierUoWFactory struct{ mock.Mock }

func (m *MockAssignCourierUoWFactory) Create() commands.AssignCourierUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignCourierUoW)
}

type MockUpdateStatusUoWFactory struct{ mock.Mock }

func (m *MockUpdateStatusUoWFactory) Create() commands.UpdateStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.UpdateStatusUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}
