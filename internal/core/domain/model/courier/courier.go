// Package courier provides the Courier aggregate used to validate shipment
// assignment: a courier may only carry shipments of their own branch, and
// only while active.
package courier

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through NewCourier or RestoreCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier represents a delivery worker of one tenant branch.
type Courier struct {
	id       kernel.UUID
	tenantID kernel.UUID
	branchID kernel.UUID
	name     string
	active   bool

	isConstructed bool
}

// NewCourier creates an active courier.
func NewCourier(id, tenantID, branchID kernel.UUID, name string) (*Courier, error) {
	c := &Courier{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		branchID.Validate(),
	); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("courier name")
	}

	c.id = id
	c.tenantID = tenantID
	c.branchID = branchID
	c.name = name

	return c, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(id, tenantID, branchID kernel.UUID, name string, active bool) (*Courier, error) {
	c, err := NewCourier(id, tenantID, branchID, name)
	if err != nil {
		return nil, err
	}
	c.active = active
	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// TenantID returns the owning tenant.
func (c *Courier) TenantID() kernel.UUID { return c.tenantID }

// BranchID returns the branch the courier works from.
func (c *Courier) BranchID() kernel.UUID { return c.branchID }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// IsActive reports whether the courier may take new shipments.
func (c *Courier) IsActive() bool { return c.active }

// CanCarry reports whether the courier may be assigned a shipment of the
// given branch.
func (c *Courier) CanCarry(branchID kernel.UUID) bool {
	return c.active && c.branchID.IsEqual(branchID)
}

// Deactivate removes the courier from assignment without touching
// shipments already assigned.
func (c *Courier) Deactivate() {
	c.active = false
}
