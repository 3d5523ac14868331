package shipment

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrCollectedAmountRequired is returned when a COD-bearing shipment is
	// delivered without a collected amount.
	ErrCollectedAmountRequired = errs.NewBusinessRuleError(
		"cod collection", "collected amount is required to deliver a COD shipment")
)

// Shipment is the aggregate root of the parcel lifecycle. It owns the
// authoritative status, validates every requested transition against the
// fixed transition table, and encodes the attempt-count/auto-return policy.
//
// Shipment follows these invariants:
//   - Owned exclusively by one tenant; every identity reference is valid
//   - Status transitions follow the transition table in status.go
//   - attemptCount never exceeds maxAttempts; reaching the ceiling forces
//     the shipment into RETURN_IN_PROGRESS
//   - The price is locked at creation and never recomputed
//   - Never physically deleted; cancellation is a terminal status
//
// Every mutation appends a StatusChange to the uncommitted audit trail,
// which the repository persists together with the shipment row in one
// transaction.
//
// Authorization is transition-agnostic here: the aggregate enforces which
// status values may follow which, not who may trigger them.
type Shipment struct {
	id             kernel.UUID
	tenantID       kernel.UUID
	branchID       kernel.UUID
	merchantID     kernel.UUID
	courierID      *kernel.UUID
	trackingNumber string
	recipient      Recipient
	weight         kernel.Weight
	price          kernel.Money
	codAmount      kernel.Money
	notes          string
	maxAttempts    int
	attemptCount   int
	status         Status

	uncommittedChanges []StatusChange
	isConstructed      bool
}

// NewShipment creates a shipment in PENDING status with a creation entry in
// its audit trail. The price must already be resolved and locked by the
// caller; maxAttempts is copied from the tenant configuration at creation
// time and never re-read.
func NewShipment(
	id, tenantID, branchID, merchantID kernel.UUID,
	trackingNumber string,
	recipient Recipient,
	weight kernel.Weight,
	price, codAmount kernel.Money,
	notes string,
	maxAttempts int,
	createdBy kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTenantID(tenantID),
		s.setBranchID(branchID),
		s.setMerchantID(merchantID),
		s.setTrackingNumber(trackingNumber),
		s.setRecipient(recipient),
		s.setWeight(weight),
		s.setMaxAttempts(maxAttempts),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	s.price = price
	s.codAmount = codAmount
	s.notes = notes
	s.record(Pending, createdBy, "shipment created")

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence without
// producing audit entries.
func RestoreShipment(
	id, tenantID, branchID, merchantID kernel.UUID,
	courierID *kernel.UUID,
	trackingNumber string,
	recipient Recipient,
	weight kernel.Weight,
	price, codAmount kernel.Money,
	notes string,
	maxAttempts, attemptCount int,
	status Status,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTenantID(tenantID),
		s.setBranchID(branchID),
		s.setMerchantID(merchantID),
		s.setTrackingNumber(trackingNumber),
		s.setRecipient(recipient),
		s.setWeight(weight),
		s.setMaxAttempts(maxAttempts),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if attemptCount < 0 || attemptCount > maxAttempts {
		return nil, errs.NewValueIsOutOfRangeError("attemptCount", attemptCount, 0, maxAttempts)
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		s.courierID = courierID
	}

	s.price = price
	s.codAmount = codAmount
	s.notes = notes
	s.attemptCount = attemptCount
	s.status = status

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// TenantID returns the owning tenant.
func (s *Shipment) TenantID() kernel.UUID { return s.tenantID }

// BranchID returns the originating branch.
func (s *Shipment) BranchID() kernel.UUID { return s.branchID }

// MerchantID returns the merchant the shipment belongs to.
func (s *Shipment) MerchantID() kernel.UUID { return s.merchantID }

// CourierID returns the assigned courier, or nil before assignment.
func (s *Shipment) CourierID() *kernel.UUID { return s.courierID }

// TrackingNumber returns the human-readable tracking identifier.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// Recipient returns the delivery contact and address.
func (s *Shipment) Recipient() Recipient { return s.recipient }

// Weight returns the parcel weight.
func (s *Shipment) Weight() kernel.Weight { return s.weight }

// Price returns the price locked at creation time.
func (s *Shipment) Price() kernel.Money { return s.price }

// CODAmount returns the cash to collect on delivery (zero if prepaid).
func (s *Shipment) CODAmount() kernel.Money { return s.codAmount }

// Notes returns the free-text notes.
func (s *Shipment) Notes() string { return s.notes }

// MaxAttempts returns the attempt ceiling copied from tenant configuration.
func (s *Shipment) MaxAttempts() int { return s.maxAttempts }

// AttemptCount returns the number of failed delivery attempts so far.
func (s *Shipment) AttemptCount() int { return s.attemptCount }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// UncommittedChanges returns the audit entries produced since the last
// persistence flush, in the order they occurred.
func (s *Shipment) UncommittedChanges() []StatusChange {
	return s.uncommittedChanges
}

// TakeUncommittedChanges returns the pending audit entries and clears them.
// Called by the repository when it writes the shipment and its history rows
// in one transaction.
func (s *Shipment) TakeUncommittedChanges() []StatusChange {
	changes := s.uncommittedChanges
	s.uncommittedChanges = nil
	return changes
}

// Approve moves an approved-by-operations shipment from PENDING to
// READY_FOR_PICKUP.
func (s *Shipment) Approve(actorID kernel.UUID) error {
	return s.transition(ReadyForPickup, actorID, "")
}

// AssignCourier assigns the shipment to a courier and moves it to
// ASSIGNED_TO_COURIER. The caller has already verified that the courier is
// active and belongs to the shipment's branch.
func (s *Shipment) AssignCourier(courierID, actorID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if err := s.transition(AssignedToCourier, actorID, ""); err != nil {
		return err
	}

	s.courierID = &courierID
	return nil
}

// Cancel withdraws a shipment that has seen no courier involvement yet.
// Legal only from PENDING or READY_FOR_PICKUP, which the transition table
// already encodes.
func (s *Shipment) Cancel(actorID kernel.UUID, note string) error {
	return s.transition(Cancelled, actorID, note)
}

// UpdateStatus applies a requested lifecycle transition.
//
// Two policies are layered on top of the transition table:
//
//   - A transition into FAILED_ATTEMPT increments attemptCount. If the
//     incremented count reaches maxAttempts, the shipment is forced into
//     RETURN_IN_PROGRESS instead and the audit note records the ceiling.
//     Callers never request RETURN_IN_PROGRESS for this path themselves.
//
//   - A transition into DELIVERED on a COD-bearing shipment requires
//     codCollected, and rejects it when it differs from the COD amount by
//     more than one cent. The caller writes the COD ledger record with the
//     collected amount in the same transaction.
func (s *Shipment) UpdateStatus(target Status, actorID kernel.UUID, note string, codCollected *kernel.Money) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	switch target {
	case FailedAttempt:
		return s.recordFailedAttempt(actorID, note)
	case Delivered:
		if err := s.validateCODCollection(codCollected); err != nil {
			return err
		}
	}

	return s.transition(target, actorID, note)
}

// transition validates the requested target against the transition table,
// applies it and appends the audit entry.
func (s *Shipment) transition(target Status, actorID kernel.UUID, note string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	if !s.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(s.status.String(), target.String())
	}

	s.status = target
	s.record(target, actorID, note)
	return nil
}

// recordFailedAttempt increments the attempt counter and lands on the
// status the attempt-ceiling decision function dictates. The table is
// consulted for the requested FAILED_ATTEMPT edge only; the forced
// RETURN_IN_PROGRESS override is an internal edge callers cannot request,
// so it is applied directly.
func (s *Shipment) recordFailedAttempt(actorID kernel.UUID, note string) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if !s.status.CanTransitionTo(FailedAttempt) {
		return errs.NewInvalidTransitionError(s.status.String(), FailedAttempt.String())
	}

	nextCount := s.attemptCount + 1
	actual := FailedAttemptOutcome(nextCount, s.maxAttempts)
	if actual == ReturnInProgress {
		ceiling := fmt.Sprintf("max delivery attempts reached (%d/%d)", nextCount, s.maxAttempts)
		if note != "" {
			note = note + "; " + ceiling
		} else {
			note = ceiling
		}
	}

	s.status = actual
	s.record(actual, actorID, note)
	s.attemptCount = nextCount
	return nil
}

// validateCODCollection enforces the collected-amount rules for delivering
// a COD-bearing shipment. Prepaid shipments ignore codCollected.
func (s *Shipment) validateCODCollection(codCollected *kernel.Money) error {
	if !s.codAmount.IsPositive() {
		return nil
	}

	if codCollected == nil {
		return ErrCollectedAmountRequired
	}

	if !codCollected.WithinCentOf(s.codAmount) {
		return errs.NewBusinessRuleError("cod collection", fmt.Sprintf(
			"collected amount %s does not match COD amount %s", codCollected, s.codAmount))
	}

	return nil
}

func (s *Shipment) record(status Status, actorID kernel.UUID, note string) {
	s.uncommittedChanges = append(s.uncommittedChanges, StatusChange{
		status:     status,
		actorID:    actorID,
		note:       note,
		occurredAt: time.Now().UTC(),
	})
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.tenantID = id
	return nil
}

func (s *Shipment) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.branchID = id
	return nil
}

func (s *Shipment) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.merchantID = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	s.recipient = recipient
	return nil
}

func (s *Shipment) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setMaxAttempts(maxAttempts int) error {
	if maxAttempts <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxAttempts", fmt.Errorf("%d is not greater than 0", maxAttempts))
	}
	s.maxAttempts = maxAttempts
	return nil
}
