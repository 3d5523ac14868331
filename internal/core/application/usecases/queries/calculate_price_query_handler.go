package queries

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalculatePriceQueryHandler previews shipment pricing. It loads the
// tenant's active rules for the zone and delegates resolution to the same
// PriceResolver shipment creation uses, so preview and creation can never
// disagree.
type CalculatePriceQueryHandler struct {
	db       *gorm.DB
	resolver *services.PriceResolver
}

// NewCalculatePriceQueryHandler creates a handler for price-preview
// queries. Requires a GORM database connection for query execution.
func NewCalculatePriceQueryHandler(db *gorm.DB) CalculatePriceQueryHandler {
	return CalculatePriceQueryHandler{
		db:       db,
		resolver: services.NewPriceResolver(),
	}
}

// Handle executes the price preview.
func (h CalculatePriceQueryHandler) Handle(
	ctx context.Context,
	query CalculatePriceQuery,
) (CalculatePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			merchant_id,
			zone,
			weight_from,
			weight_to,
			price_cents,
			created_at
		FROM pricing_rules
		WHERE tenant_id = ? AND LOWER(zone) = LOWER(?) AND active
	`, query.TenantID().Bytes(), query.Zone()).Rows()
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}
	defer rows.Close()

	rules := make([]*pricing.Rule, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			merchantID *uuid.UUID
			zone       string
			weightFrom float64
			weightTo   float64
			priceCents int64
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &merchantID, &zone, &weightFrom, &weightTo, &priceCents, &createdAt); err != nil {
			return CalculatePriceQueryResponse{}, err
		}

		ruleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return CalculatePriceQueryResponse{}, idErr
		}

		var ruleMerchant *kernel.UUID
		if merchantID != nil {
			mID, mErr := kernel.UUIDFromBytes((*merchantID)[:])
			if mErr != nil {
				return CalculatePriceQueryResponse{}, mErr
			}
			ruleMerchant = &mID
		}

		rule, ruleErr := pricing.RestoreRule(
			ruleID, query.TenantID(), ruleMerchant, zone,
			weightFrom, weightTo, kernel.MoneyFromCents(priceCents), true, createdAt)
		if ruleErr != nil {
			return CalculatePriceQueryResponse{}, ruleErr
		}
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	quote := h.resolver.Resolve(rules, query.MerchantID(), query.Zone(), query.Weight())
	return CalculatePriceQueryResponse{
		Price:  quote.Price,
		RuleID: quote.RuleID,
		Found:  quote.Found,
		Reason: quote.Reason,
	}, nil
}
