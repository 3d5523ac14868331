package shipment

import (
	"parcel/internal/pkg/errs"
)

// Recipient is a value object holding the contact and address details of
// the person a shipment is delivered to. The zone (city name) doubles as
// the pricing-relevant geography.
type Recipient struct {
	name    string
	phone   string
	address string
	zone    string
}

// NewRecipient creates a validated Recipient. All fields are required.
func NewRecipient(name, phone, address, zone string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient name")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient phone")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient address")
	}
	if zone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient zone")
	}

	return Recipient{
		name:    name,
		phone:   phone,
		address: address,
		zone:    zone,
	}, nil
}

// Validate checks that the recipient was constructed through NewRecipient.
func (r Recipient) Validate() error {
	if r.name == "" || r.phone == "" || r.address == "" || r.zone == "" {
		return errs.NewValueIsRequiredError("recipient must be created via NewRecipient")
	}
	return nil
}

// Name returns the recipient's display name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's contact phone number.
func (r Recipient) Phone() string {
	return r.phone
}

// Address returns the delivery street address.
func (r Recipient) Address() string {
	return r.address
}

// Zone returns the delivery zone (city name) used for pricing.
func (r Recipient) Zone() string {
	return r.zone
}
