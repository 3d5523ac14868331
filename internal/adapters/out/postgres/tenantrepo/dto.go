// Package tenantrepo provides read access to tenant and branch reference
// data. Tenants and branches are owned by an upstream system; this package
// only reads the slice of their configuration the parcel domain needs.
package tenantrepo

import (
	"github.com/google/uuid"
)

// TenantDTO represents the tenant configuration row.
type TenantDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string
	MaxDeliveryAttempts int
	TrackingPrefix      string
}

// TableName specifies the database table name for tenants.
func (TenantDTO) TableName() string {
	return "tenants"
}

// BranchDTO represents one branch of a tenant.
type BranchDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Active   bool
}

// TableName specifies the database table name for branches.
func (BranchDTO) TableName() string {
	return "branches"
}
