package cod

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
)

// RecordStatus represents the settlement state of a collected COD amount.
type RecordStatus int

const (
	// RecordStatusUnknown represents an invalid or undefined status.
	RecordStatusUnknown RecordStatus = iota

	// Collected means the cash is held by the operator and owed to the
	// merchant; the record is eligible for the next settlement batch.
	Collected

	// Settled means the record was paid out through a confirmed settlement.
	Settled
)

func getRecordStatusStrings() map[RecordStatus]string {
	return map[RecordStatus]string{
		RecordStatusUnknown: "UNKNOWN",
		Collected:           "COLLECTED",
		Settled:             "SETTLED",
	}
}

// Validate checks if the RecordStatus value is valid.
func (s RecordStatus) Validate() error {
	if s != Collected && s != Settled {
		return errs.NewValueIsInvalidErrorWithCause(
			"record status", fmt.Errorf("%d is not a valid record status", s))
	}
	return nil
}

// String returns the wire name of the record status.
func (s RecordStatus) String() string {
	if str, ok := getRecordStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Record is one unit of cash collected from a recipient on behalf of a
// merchant. It is created exactly once, when a COD-bearing shipment is
// delivered, in the same transaction as the shipment update. A record moves
// COLLECTED -> SETTLED through a confirmed settlement and never back.
type Record struct {
	id           kernel.UUID
	tenantID     kernel.UUID
	merchantID   kernel.UUID
	courierID    kernel.UUID
	shipmentID   kernel.UUID
	amount       kernel.Money
	collectedAt  time.Time
	status       RecordStatus
	settlementID *kernel.UUID

	isConstructed bool
}

// NewRecord creates a COLLECTED record for a delivered COD shipment.
// The amount is the cash the courier actually collected, already validated
// by the shipment aggregate against the COD amount.
func NewRecord(
	id, tenantID, merchantID, courierID, shipmentID kernel.UUID,
	amount kernel.Money,
	collectedAt time.Time,
) (*Record, error) {
	r := &Record{
		status:        Collected,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		merchantID.Validate(),
		courierID.Validate(),
		shipmentID.Validate(),
	); err != nil {
		return nil, err
	}

	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	if collectedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("collectedAt")
	}

	r.id = id
	r.tenantID = tenantID
	r.merchantID = merchantID
	r.courierID = courierID
	r.shipmentID = shipmentID
	r.amount = amount
	r.collectedAt = collectedAt

	return r, nil
}

// RestoreRecord reconstructs a record from persistence.
func RestoreRecord(
	id, tenantID, merchantID, courierID, shipmentID kernel.UUID,
	amount kernel.Money,
	collectedAt time.Time,
	status RecordStatus,
	settlementID *kernel.UUID,
) (*Record, error) {
	r, err := NewRecord(id, tenantID, merchantID, courierID, shipmentID, amount, collectedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if settlementID != nil {
		if err = settlementID.Validate(); err != nil {
			return nil, err
		}
	}
	if status == Settled && settlementID == nil {
		return nil, errs.NewValueIsRequiredError("settlementID of a settled record")
	}

	r.status = status
	r.settlementID = settlementID
	return r, nil
}

// Validate ensures the Record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// TenantID returns the owning tenant.
func (r *Record) TenantID() kernel.UUID { return r.tenantID }

// MerchantID returns the merchant the cash is owed to.
func (r *Record) MerchantID() kernel.UUID { return r.merchantID }

// CourierID returns the courier who collected the cash.
func (r *Record) CourierID() kernel.UUID { return r.courierID }

// ShipmentID returns the delivered shipment this record belongs to.
// Shipment and record relate one-to-one.
func (r *Record) ShipmentID() kernel.UUID { return r.shipmentID }

// Amount returns the collected cash amount.
func (r *Record) Amount() kernel.Money { return r.amount }

// CollectedAt returns the collection timestamp.
func (r *Record) CollectedAt() time.Time { return r.collectedAt }

// Status returns the record's settlement state.
func (r *Record) Status() RecordStatus { return r.status }

// SettlementID returns the settlement the record is batched into, or nil.
func (r *Record) SettlementID() *kernel.UUID { return r.settlementID }

// AttachToSettlement points a COLLECTED record at a newly created
// settlement batch. The record stays COLLECTED until the payout is
// confirmed.
func (r *Record) AttachToSettlement(settlementID kernel.UUID) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := settlementID.Validate(); err != nil {
		return err
	}
	if r.status != Collected {
		return errs.NewConflictError("cod record",
			fmt.Sprintf("record %s is %s, only COLLECTED records can be batched", r.id, r.status))
	}
	if r.settlementID != nil {
		return errs.NewConflictError("cod record",
			fmt.Sprintf("record %s already belongs to settlement %s", r.id, r.settlementID))
	}

	r.settlementID = &settlementID
	return nil
}

// MarkSettled cascades a confirmed payout onto the record.
func (r *Record) MarkSettled() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.status != Collected {
		return errs.NewConflictError("cod record",
			fmt.Sprintf("record %s is already %s", r.id, r.status))
	}
	if r.settlementID == nil {
		return errs.NewConflictError("cod record",
			fmt.Sprintf("record %s is not attached to a settlement", r.id))
	}

	r.status = Settled
	return nil
}
