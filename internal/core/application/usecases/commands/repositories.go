// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// CODRecordRepoFactory provides access to COD ledger repository within a transaction.
	CODRecordRepoFactory interface {
		CODRecordRepository() ports.CODRecordRepository
	}

	// SettlementRepoFactory provides access to settlement repository within a transaction.
	SettlementRepoFactory interface {
		SettlementRepository() ports.SettlementRepository
	}

	// PricingRuleRepoFactory provides access to pricing-rule repository within a transaction.
	PricingRuleRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// TenantRepoFactory provides access to tenant reference data within a transaction.
	TenantRepoFactory interface {
		TenantRepository() ports.TenantRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used by commands that touch a single shipment aggregate.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CreateShipmentUoW manages transactions for shipment creation, which
	// reads tenant settings and pricing rules before writing the shipment.
	CreateShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		TenantRepoFactory
		PricingRuleRepoFactory
	}

	// CreateShipmentUoWFactory creates new shipment-creation unit of work instances.
	CreateShipmentUoWFactory interface {
		Create() CreateShipmentUoW
	}

	// AssignCourierUoW manages transactions for courier assignment, which
	// validates the courier before writing the shipment.
	AssignCourierUoW interface {
		TxManager
		ShipmentRepoFactory
		CourierRepoFactory
	}

	// AssignCourierUoWFactory creates new courier-assignment unit of work instances.
	AssignCourierUoWFactory interface {
		Create() AssignCourierUoW
	}

	// UpdateStatusUoW manages transactions for lifecycle transitions. A COD
	// delivery writes both the shipment and the new ledger record, so both
	// repositories share the transaction.
	UpdateStatusUoW interface {
		TxManager
		ShipmentRepoFactory
		CODRecordRepoFactory
	}

	// UpdateStatusUoWFactory creates new status-update unit of work instances.
	UpdateStatusUoWFactory interface {
		Create() UpdateStatusUoW
	}

	// SettlementUoW manages transactions across settlements and the COD
	// ledger. Creating a batch writes the settlement and re-points its
	// records; confirming a payout flips the settlement and its records.
	SettlementUoW interface {
		TxManager
		SettlementRepoFactory
		CODRecordRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
