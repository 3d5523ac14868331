package codrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/cod"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCODRecordRepository implements CODRecordRepository using GORM.
type GormCODRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCODRecordRepository creates a new GORM COD record repository.
func NewGormCODRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormCODRecordRepository {
	return &GormCODRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new COD record to the database.
func (r *GormCODRecordRepository) Add(ctx context.Context, record *cod.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves an existing COD record to the database.
func (r *GormCODRecordRepository) Update(ctx context.Context, record *cod.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("*").Omit("id", "tenant_id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a COD record by ID within a tenant.
func (r *GormCODRecordRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*cod.Record, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cod record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetCollectedByMerchant retrieves the merchant's unbatched COLLECTED
// records, oldest collection first.
func (r *GormCODRecordRepository) GetCollectedByMerchant(
	ctx context.Context, tenantID, merchantID kernel.UUID,
) ([]*cod.Record, error) {
	if err := errors.Join(tenantID.Validate(), merchantID.Validate()); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND merchant_id = ? AND status = ? AND settlement_id IS NULL",
			tenantID.Bytes(), merchantID.Bytes(), cod.Collected).
		Order("collected_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetBySettlement retrieves all records linked to a settlement.
func (r *GormCODRecordRepository) GetBySettlement(
	ctx context.Context, tenantID, settlementID kernel.UUID,
) ([]*cod.Record, error) {
	if err := errors.Join(tenantID.Validate(), settlementID.Validate()); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND settlement_id = ?", tenantID.Bytes(), settlementID.Bytes()).
		Order("collected_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []RecordDTO) ([]*cod.Record, error) {
	records := make([]*cod.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
