package pricingrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingRuleRepository implements PricingRuleRepository using GORM.
type GormPricingRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPricingRuleRepository creates a new GORM pricing rule repository.
func NewGormPricingRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pricing rule to the database.
func (r *GormPricingRuleRepository) Add(ctx context.Context, rule *pricing.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rule.ID(), rule)
	return nil
}

// Update saves an existing pricing rule to the database.
func (r *GormPricingRuleRepository) Update(ctx context.Context, rule *pricing.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	result := r.db.WithContext(ctx).Model(&RuleDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("*").Omit("id", "tenant_id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(rule.ID(), rule)
	return nil
}

// Get retrieves a pricing rule by ID within a tenant.
func (r *GormPricingRuleRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*pricing.Rule, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto RuleDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing rule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByZone retrieves the tenant's active rules for a zone,
// case-insensitively.
func (r *GormPricingRuleRepository) GetActiveByZone(
	ctx context.Context, tenantID kernel.UUID, zone string,
) ([]*pricing.Rule, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if zone == "" {
		return nil, errs.NewValueIsRequiredError("zone")
	}

	var dtos []RuleDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND LOWER(zone) = LOWER(?) AND active", tenantID.Bytes(), zone).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*pricing.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
