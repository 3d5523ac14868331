package queries

import (
	"context"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUnsettledMerchantsQueryHandler finds merchants with unbatched
// collected COD cash across all tenants.
type ListUnsettledMerchantsQueryHandler struct {
	db *gorm.DB
}

// NewListUnsettledMerchantsQueryHandler creates a handler for unsettled
// merchant queries. Requires a GORM database connection for query
// execution.
func NewListUnsettledMerchantsQueryHandler(db *gorm.DB) ListUnsettledMerchantsQueryHandler {
	return ListUnsettledMerchantsQueryHandler{db: db}
}

// Handle executes the query. Results are grouped per tenant and merchant
// and ordered by tenant for stable output.
func (h ListUnsettledMerchantsQueryHandler) Handle(
	ctx context.Context,
	query ListUnsettledMerchantsQuery,
) ([]ListUnsettledMerchantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tenant_id,
			merchant_id,
			SUM(amount_cents),
			COUNT(*)
		FROM cod_records
		WHERE status = ? AND settlement_id IS NULL
		GROUP BY tenant_id, merchant_id
		ORDER BY tenant_id, merchant_id
	`, cod.Collected).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	merchants := make([]ListUnsettledMerchantsQueryResponse, 0)
	for rows.Next() {
		var (
			tenantID   uuid.UUID
			merchantID uuid.UUID
			totalCents int64
			count      int
		)

		if err = rows.Scan(&tenantID, &merchantID, &totalCents, &count); err != nil {
			return nil, err
		}

		tID, idErr := kernel.UUIDFromBytes(tenantID[:])
		if idErr != nil {
			return nil, idErr
		}
		mID, idErr := kernel.UUIDFromBytes(merchantID[:])
		if idErr != nil {
			return nil, idErr
		}

		merchants = append(merchants, ListUnsettledMerchantsQueryResponse{
			TenantID:       tID,
			MerchantID:     mID,
			UnsettledTotal: kernel.MoneyFromCents(totalCents),
			RecordCount:    count,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return merchants, nil
}
