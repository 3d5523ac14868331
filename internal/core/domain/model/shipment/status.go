package shipment

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The lifecycle forms a fixed state machine:
//
//	PENDING ──> READY_FOR_PICKUP ──> ASSIGNED_TO_COURIER ──> PICKED_UP ──> OUT_FOR_DELIVERY ──┬──> DELIVERED
//	   │                │                                                        ▲            │
//	   │                │                                                        │            └──> FAILED_ATTEMPT
//	   │                │                                                        └──────────────────────┤
//	   │                │                                                                               │
//	   └────────────────┴──> CANCELLED                               RETURN_IN_PROGRESS <───────────────┘
//	                                                                         │
//	                                                                         └──> RETURNED
//
// DELIVERED, RETURNED and CANCELLED are terminal. The legal transitions are
// held in a single table rather than scattered through handler code, so the
// policy stays auditable and testable in isolation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created shipment,
	// awaiting approval by the tenant's operations staff.
	Pending

	// ReadyForPickup marks an approved shipment waiting for a courier.
	ReadyForPickup

	// AssignedToCourier marks a shipment assigned to a specific courier.
	AssignedToCourier

	// PickedUp marks a shipment the courier has collected from the branch.
	PickedUp

	// OutForDelivery marks a shipment on its way to the recipient.
	OutForDelivery

	// Delivered is the terminal success status.
	Delivered

	// FailedAttempt marks a delivery attempt that did not reach the
	// recipient. The shipment can go out again or enter the return path.
	FailedAttempt

	// ReturnInProgress marks a shipment on its way back to the merchant.
	ReturnInProgress

	// Returned is the terminal status of the return path.
	Returned

	// Cancelled is the terminal status of a shipment withdrawn before any
	// courier involvement.
	Cancelled
)

// transitions is the authoritative transition table. A requested change is
// legal only if the target appears in the current status's row. Terminal
// statuses have no row.
var transitions = map[Status][]Status{
	Pending:           {ReadyForPickup, Cancelled},
	ReadyForPickup:    {AssignedToCourier, Cancelled},
	AssignedToCourier: {PickedUp},
	PickedUp:          {OutForDelivery},
	OutForDelivery:    {Delivered, FailedAttempt},
	FailedAttempt:     {OutForDelivery, ReturnInProgress},
	ReturnInProgress:  {Returned},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Pending:           "PENDING",
		ReadyForPickup:    "READY_FOR_PICKUP",
		AssignedToCourier: "ASSIGNED_TO_COURIER",
		PickedUp:          "PICKED_UP",
		OutForDelivery:    "OUT_FOR_DELIVERY",
		Delivered:         "DELIVERED",
		FailedAttempt:     "FAILED_ATTEMPT",
		ReturnInProgress:  "RETURN_IN_PROGRESS",
		Returned:          "RETURNED",
		Cancelled:         "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unknown names; UNKNOWN itself is not accepted.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a defined lifecycle status.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether the transition table lists target as a
// legal successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.Validate() == nil
}

// FailedAttemptOutcome is the single decision function for the
// attempt-ceiling policy: given the attempt count after the increment and
// the shipment's configured ceiling, it returns the status that must
// actually be persisted for a requested FAILED_ATTEMPT transition. Reaching
// the ceiling forces the shipment into the return path.
func FailedAttemptOutcome(attemptCount, maxAttempts int) Status {
	if attemptCount >= maxAttempts {
		return ReturnInProgress
	}
	return FailedAttempt
}
