package shipmentrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
// Writes flush the aggregate's pending audit entries into
// shipment_status_history in the same transaction as the shipment row.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its audit entries to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.flushHistory(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment and its pending audit entries.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("*").Omit("id", "tenant_id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.flushHistory(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID within a tenant. Inside a transaction the
// row is read FOR UPDATE, so two concurrent transitions on one shipment are
// serialized and the second one evaluates the first one's committed status.
func (r *GormShipmentRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*shipment.Shipment, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a shipment by tracking number within a tenant.
func (r *GormShipmentRepository) GetByTrackingNumber(
	ctx context.Context, tenantID kernel.UUID, trackingNumber string,
) (*shipment.Shipment, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tracking_number = ? AND tenant_id = ?", trackingNumber, tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// TrackingNumberExists reports whether any shipment uses the tracking number.
func (r *GormShipmentRepository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("tracking_number = ?", trackingNumber).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetStatusHistory returns a shipment's audit trail, oldest first.
func (r *GormShipmentRepository) GetStatusHistory(
	ctx context.Context, tenantID, id kernel.UUID,
) ([]shipment.StatusChange, error) {
	// Existence check keeps not-found distinguishable from empty history
	// and enforces tenant scoping on the history table.
	if _, err := r.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}

	var rows []StatusHistoryDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", id.Bytes()).
		Order("occurred_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return historyToDomain(rows)
}

func (r *GormShipmentRepository) flushHistory(ctx context.Context, aggregate *shipment.Shipment) error {
	rows := historyFromDomain(aggregate.ID(), aggregate.TakeUncommittedChanges())
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
