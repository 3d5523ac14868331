package queries

import (
	"context"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetMerchantBalanceQueryHandler computes a merchant's COD position with a
// single aggregation over the ledger plus a pending-settlement lookup.
type GetMerchantBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantBalanceQueryHandler creates a handler for merchant balance
// queries. Requires a GORM database connection for query execution.
func NewGetMerchantBalanceQueryHandler(db *gorm.DB) GetMerchantBalanceQueryHandler {
	return GetMerchantBalanceQueryHandler{db: db}
}

// Handle executes the balance query. Amounts are aggregated in cents
// directly in SQL; an empty ledger yields an all-zero response.
func (h GetMerchantBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantBalanceQuery,
) (GetMerchantBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMerchantBalanceQueryResponse{}, err
	}

	var totals struct {
		UnsettledCents     int64
		PendingCents       int64
		SettledCents       int64
		PendingRecordCount int64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount_cents) FILTER (WHERE status = ? AND settlement_id IS NULL), 0) AS unsettled_cents,
			COALESCE(SUM(amount_cents) FILTER (WHERE status = ? AND settlement_id IS NOT NULL), 0) AS pending_cents,
			COALESCE(SUM(amount_cents) FILTER (WHERE status = ?), 0) AS settled_cents,
			COUNT(*) FILTER (WHERE status = ?) AS pending_record_count
		FROM cod_records
		WHERE tenant_id = ? AND merchant_id = ?
	`, cod.Collected, cod.Collected, cod.Settled, cod.Collected,
		query.TenantID().Bytes(), query.MerchantID().Bytes()).
		Scan(&totals).Error
	if err != nil {
		return GetMerchantBalanceQueryResponse{}, err
	}

	var pendingCount int64
	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM settlements
		WHERE tenant_id = ? AND merchant_id = ? AND status = ?
	`, query.TenantID().Bytes(), query.MerchantID().Bytes(), cod.SettlementPending).
		Scan(&pendingCount).Error
	if err != nil {
		return GetMerchantBalanceQueryResponse{}, err
	}

	return GetMerchantBalanceQueryResponse{
		UnsettledTotal:       kernel.MoneyFromCents(totals.UnsettledCents),
		PendingTotal:         kernel.MoneyFromCents(totals.PendingCents),
		SettledTotal:         kernel.MoneyFromCents(totals.SettledCents),
		PendingRecordCount:   totals.PendingRecordCount,
		HasPendingSettlement: pendingCount > 0,
	}, nil
}
