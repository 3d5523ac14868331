package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the
	// current transaction.
	ShipmentRepository() ShipmentRepository

	// CODRecordRepository returns a CODRecordRepository bound to the
	// current transaction.
	CODRecordRepository() CODRecordRepository

	// SettlementRepository returns a SettlementRepository bound to the
	// current transaction.
	SettlementRepository() SettlementRepository

	// PricingRuleRepository returns a PricingRuleRepository bound to the
	// current transaction.
	PricingRuleRepository() PricingRuleRepository

	// CourierRepository returns a CourierRepository bound to the current
	// transaction.
	CourierRepository() CourierRepository

	// TenantRepository returns a TenantRepository bound to the current
	// transaction.
	TenantRepository() TenantRepository
}
