package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrCalculatePriceQueryIsNotConstructed = errors.New(
	"CalculatePriceQuery must be created via NewCalculatePriceQuery constructor",
)

// CalculatePriceQuery previews the price a shipment would get, without
// creating anything. It runs the same resolution as shipment creation:
// merchant-scoped rules first, then tenant defaults.
//
// Example:
//
//	weight, _ := kernel.NewWeight(3)
//	query, err := NewCalculatePriceQuery(tenantID, merchantID, "Cairo", weight)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCalculatePriceQueryHandler(db)
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !quote.Found {
//	    fmt.Println(quote.Reason)
//	}
type CalculatePriceQuery struct {
	tenantID   kernel.UUID
	merchantID kernel.UUID
	zone       string
	weight     kernel.Weight

	guard guard.ConstructorGuard
}

// NewCalculatePriceQuery creates a price-preview query.
func NewCalculatePriceQuery(
	tenantID, merchantID kernel.UUID,
	zone string,
	weight kernel.Weight,
) (CalculatePriceQuery, error) {
	if err := errors.Join(
		tenantID.Validate(),
		merchantID.Validate(),
		weight.Validate(),
	); err != nil {
		return CalculatePriceQuery{}, err
	}
	if zone == "" {
		return CalculatePriceQuery{}, errs.NewValueIsRequiredError("zone")
	}

	return CalculatePriceQuery{
		tenantID:   tenantID,
		merchantID: merchantID,
		zone:       zone,
		weight:     weight,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculatePriceQuery) Validate() error {
	return q.guard.Validate(ErrCalculatePriceQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q CalculatePriceQuery) TenantID() kernel.UUID { return q.tenantID }

// MerchantID returns the merchant the price is previewed for.
func (q CalculatePriceQuery) MerchantID() kernel.UUID { return q.merchantID }

// Zone returns the delivery zone being priced.
func (q CalculatePriceQuery) Zone() string { return q.zone }

// Weight returns the parcel weight being priced.
func (q CalculatePriceQuery) Weight() kernel.Weight { return q.weight }

// CalculatePriceQueryResponse represents a price preview. Found false with
// a Reason is a valid answer, not an error.
type CalculatePriceQueryResponse struct {
	Price  kernel.Money
	RuleID kernel.UUID
	Found  bool
	Reason string
}
