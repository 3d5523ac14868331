package settlementrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique-constraint
// violations.
const uniqueViolation = "23505"

// GormSettlementRepository implements SettlementRepository using GORM.
type GormSettlementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSettlementRepository creates a new GORM settlement repository.
func NewGormSettlementRepository(db *gorm.DB, tracker aggregateTracker) *GormSettlementRepository {
	return &GormSettlementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new settlement to the database. A unique violation on the
// pending-per-merchant index means another transaction created the
// merchant's pending settlement first; it surfaces as a ConflictError.
func (r *GormSettlementRepository) Add(ctx context.Context, settlement *cod.Settlement) error {
	if err := settlement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(settlement)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("settlement",
				"merchant already has a pending settlement", err)
		}
		return err
	}

	r.tracker.TrackAggregate(settlement.ID(), settlement)
	return nil
}

// Update saves an existing settlement to the database.
func (r *GormSettlementRepository) Update(ctx context.Context, settlement *cod.Settlement) error {
	if err := settlement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(settlement)
	result := r.db.WithContext(ctx).Model(&SettlementDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("*").Omit("id", "tenant_id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(settlement.ID(), settlement)
	return nil
}

// Get retrieves a settlement by ID within a tenant.
func (r *GormSettlementRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*cod.Settlement, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto SettlementDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("settlement", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByMerchant retrieves the merchant's pending settlement.
func (r *GormSettlementRepository) GetPendingByMerchant(
	ctx context.Context, tenantID, merchantID kernel.UUID,
) (*cod.Settlement, error) {
	if err := errors.Join(tenantID.Validate(), merchantID.Validate()); err != nil {
		return nil, err
	}

	var dto SettlementDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND merchant_id = ? AND status = ?",
			tenantID.Bytes(), merchantID.Bytes(), cod.SettlementPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending settlement", merchantID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
