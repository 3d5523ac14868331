package cod

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

var (
	// ErrSettlementIsNotConstructed is returned when a Settlement instance
	// was not created through NewSettlement or RestoreSettlement.
	ErrSettlementIsNotConstructed = errors.New(
		"Settlement must be created via NewSettlement constructor")
)

// SettlementStatus represents the payout state of a settlement batch.
type SettlementStatus int

const (
	// SettlementStatusUnknown represents an invalid or undefined status.
	SettlementStatusUnknown SettlementStatus = iota

	// SettlementPending means the batch exists but has not been paid out.
	// At most one PENDING settlement may exist per merchant at any time.
	SettlementPending

	// SettlementPaid means the payout was confirmed; linked records are
	// SETTLED. Paid settlements are never mutated again.
	SettlementPaid
)

func getSettlementStatusStrings() map[SettlementStatus]string {
	return map[SettlementStatus]string{
		SettlementStatusUnknown: "UNKNOWN",
		SettlementPending:       "PENDING",
		SettlementPaid:          "PAID",
	}
}

// Validate checks if the SettlementStatus value is valid.
func (s SettlementStatus) Validate() error {
	if s != SettlementPending && s != SettlementPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"settlement status", fmt.Errorf("%d is not a valid settlement status", s))
	}
	return nil
}

// String returns the wire name of the settlement status.
func (s SettlementStatus) String() string {
	if str, ok := getSettlementStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Settlement is a payable batch of collected COD records for one merchant.
// Its total amount is the sum of the linked records at creation time, fixed
// then and never recomputed. Creation and payout confirmation are the only
// two writes a settlement ever sees.
type Settlement struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	merchantID  kernel.UUID
	totalAmount kernel.Money
	status      SettlementStatus
	note        string
	confirmedBy *kernel.UUID
	confirmedAt *time.Time

	isConstructed bool
}

// NewSettlement creates a PENDING settlement batch. The total must be the
// positive sum of the records being batched; the caller re-points those
// records at the new settlement in the same transaction.
func NewSettlement(
	id, tenantID, merchantID kernel.UUID,
	totalAmount kernel.Money,
	note string,
) (*Settlement, error) {
	s := &Settlement{
		status:        SettlementPending,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		merchantID.Validate(),
	); err != nil {
		return nil, err
	}

	if !totalAmount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("%s is not greater than 0", totalAmount))
	}

	s.id = id
	s.tenantID = tenantID
	s.merchantID = merchantID
	s.totalAmount = totalAmount
	s.note = note

	return s, nil
}

// RestoreSettlement reconstructs a settlement from persistence.
func RestoreSettlement(
	id, tenantID, merchantID kernel.UUID,
	totalAmount kernel.Money,
	status SettlementStatus,
	note string,
	confirmedBy *kernel.UUID,
	confirmedAt *time.Time,
) (*Settlement, error) {
	s, err := NewSettlement(id, tenantID, merchantID, totalAmount, note)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status == SettlementPaid && (confirmedBy == nil || confirmedAt == nil) {
		return nil, errs.NewValueIsRequiredError("confirmation details of a paid settlement")
	}
	if confirmedBy != nil {
		if err = confirmedBy.Validate(); err != nil {
			return nil, err
		}
	}

	s.status = status
	s.confirmedBy = confirmedBy
	s.confirmedAt = confirmedAt
	return s, nil
}

// Validate ensures the Settlement was created through a constructor.
func (s *Settlement) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettlementIsNotConstructed
	}
	return nil
}

// ID returns the settlement's unique identifier.
func (s *Settlement) ID() kernel.UUID { return s.id }

// TenantID returns the owning tenant.
func (s *Settlement) TenantID() kernel.UUID { return s.tenantID }

// MerchantID returns the merchant being paid out.
func (s *Settlement) MerchantID() kernel.UUID { return s.merchantID }

// TotalAmount returns the batch total fixed at creation time.
func (s *Settlement) TotalAmount() kernel.Money { return s.totalAmount }

// Status returns the payout state.
func (s *Settlement) Status() SettlementStatus { return s.status }

// Note returns the optional free-text note.
func (s *Settlement) Note() string { return s.note }

// ConfirmedBy returns the user who confirmed the payout, or nil.
func (s *Settlement) ConfirmedBy() *kernel.UUID { return s.confirmedBy }

// ConfirmedAt returns the payout confirmation time, or nil.
func (s *Settlement) ConfirmedAt() *time.Time { return s.confirmedAt }

// ConfirmPayout marks the settlement PAID. Confirming an already paid
// settlement is rejected and leaves the confirmation details untouched; the
// caller cascades the linked records to SETTLED in the same transaction.
func (s *Settlement) ConfirmPayout(confirmedBy kernel.UUID, note string, confirmedAt time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := confirmedBy.Validate(); err != nil {
		return err
	}
	if confirmedAt.IsZero() {
		return errs.NewValueIsRequiredError("confirmedAt")
	}

	if s.status == SettlementPaid {
		return errs.NewConflictError("settlement",
			fmt.Sprintf("settlement %s is already paid", s.id))
	}

	s.status = SettlementPaid
	s.confirmedBy = &confirmedBy
	s.confirmedAt = &confirmedAt
	if note != "" {
		s.note = note
	}
	return nil
}
