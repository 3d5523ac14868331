package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrListUnsettledMerchantsQueryIsNotConstructed = errors.New(
	"ListUnsettledMerchantsQuery must be created via NewListUnsettledMerchantsQuery constructor",
)

// ListUnsettledMerchantsQuery lists the merchants that have collected COD
// records not yet batched into a settlement. The nightly settlement job
// drives batch creation off this list.
type ListUnsettledMerchantsQuery struct {
	guard guard.ConstructorGuard
}

// NewListUnsettledMerchantsQuery creates a query for merchants awaiting
// settlement. This is a parameterless query spanning all tenants.
func NewListUnsettledMerchantsQuery() ListUnsettledMerchantsQuery {
	return ListUnsettledMerchantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListUnsettledMerchantsQuery) Validate() error {
	return q.guard.Validate(ErrListUnsettledMerchantsQueryIsNotConstructed)
}

// ListUnsettledMerchantsQueryResponse represents one merchant with
// unbatched collected cash.
type ListUnsettledMerchantsQueryResponse struct {
	TenantID       kernel.UUID
	MerchantID     kernel.UUID
	UnsettledTotal kernel.Money
	RecordCount    int
}
