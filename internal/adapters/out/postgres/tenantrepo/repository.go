package tenantrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM.
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GORM tenant repository.
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// GetSettings retrieves the tenant's parcel settings.
func (r *GormTenantRepository) GetSettings(ctx context.Context, tenantID kernel.UUID) (ports.TenantSettings, error) {
	if err := tenantID.Validate(); err != nil {
		return ports.TenantSettings{}, err
	}

	var dto TenantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", tenantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.TenantSettings{}, errs.NewObjectNotFoundError("tenant", tenantID.String())
		}
		return ports.TenantSettings{}, err
	}

	return ports.TenantSettings{
		MaxDeliveryAttempts: dto.MaxDeliveryAttempts,
		TrackingPrefix:      dto.TrackingPrefix,
	}, nil
}

// HasActiveBranch reports whether the branch exists, is active and belongs
// to the tenant.
func (r *GormTenantRepository) HasActiveBranch(ctx context.Context, tenantID, branchID kernel.UUID) (bool, error) {
	if err := errors.Join(tenantID.Validate(), branchID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&BranchDTO{}).
		Where("id = ? AND tenant_id = ? AND active", branchID.Bytes(), tenantID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
