package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
)

// TenantSettings is the slice of tenant configuration the parcel domain
// reads. A shipment copies MaxDeliveryAttempts at creation time; changing
// the setting later never affects shipments already issued.
type TenantSettings struct {
	// MaxDeliveryAttempts is the failed-attempt ceiling for new
	// shipments of this tenant.
	MaxDeliveryAttempts int

	// TrackingPrefix is the tenant's tracking-number prefix, empty for
	// the service default.
	TrackingPrefix string
}

// TenantRepository defines read access to tenant reference data. Tenants
// and branches are owned by an upstream system; the parcel domain only
// validates against them.
type TenantRepository interface {
	// GetSettings retrieves the tenant's parcel settings. Returns an
	// ObjectNotFoundError for unknown tenants.
	GetSettings(ctx context.Context, tenantID kernel.UUID) (TenantSettings, error)

	// HasActiveBranch reports whether the branch exists, is active and
	// belongs to the tenant.
	HasActiveBranch(ctx context.Context, tenantID, branchID kernel.UUID) (bool, error)
}
