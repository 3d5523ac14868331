// Package queries contains read-only operations that bypass the domain
// model and query the database directly. Implements the Query side of the
// CQRS architecture.
package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetMerchantBalanceQueryIsNotConstructed = errors.New(
	"GetMerchantBalanceQuery must be created via NewGetMerchantBalanceQuery constructor",
)

// GetMerchantBalanceQuery retrieves a merchant's COD position: how much
// cash the operator holds for them, how much is batched into a pending
// settlement and how much has been paid out.
//
// Example:
//
//	query, err := NewGetMerchantBalanceQuery(tenantID, merchantID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetMerchantBalanceQueryHandler(db)
//	balance, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get merchant balance: %w", err)
//	}
//	fmt.Printf("owed to merchant: %s\n", balance.UnsettledTotal)
type GetMerchantBalanceQuery struct {
	tenantID   kernel.UUID
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMerchantBalanceQuery creates a query for a merchant's COD balance.
func NewGetMerchantBalanceQuery(tenantID, merchantID kernel.UUID) (GetMerchantBalanceQuery, error) {
	if err := errors.Join(tenantID.Validate(), merchantID.Validate()); err != nil {
		return GetMerchantBalanceQuery{}, err
	}

	return GetMerchantBalanceQuery{
		tenantID:   tenantID,
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantBalanceQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetMerchantBalanceQuery) TenantID() kernel.UUID { return q.tenantID }

// MerchantID returns the merchant being queried.
func (q GetMerchantBalanceQuery) MerchantID() kernel.UUID { return q.merchantID }

// GetMerchantBalanceQueryResponse represents a merchant's COD position.
type GetMerchantBalanceQueryResponse struct {
	// UnsettledTotal is collected cash not yet batched into a settlement.
	UnsettledTotal kernel.Money

	// PendingTotal is collected cash batched into the merchant's pending
	// settlement, awaiting payout confirmation.
	PendingTotal kernel.Money

	// SettledTotal is cash already paid out through confirmed settlements.
	SettledTotal kernel.Money

	// PendingRecordCount is the number of collected ledger records not yet
	// paid out, whether or not they are batched into a settlement.
	PendingRecordCount int64

	// HasPendingSettlement reports whether a pending settlement exists.
	HasPendingSettlement bool
}
