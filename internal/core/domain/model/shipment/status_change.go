package shipment

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
)

// StatusChange is one immutable entry of a shipment's append-only audit
// trail. One entry is produced on every status change, including creation.
// Entries are never updated or deleted; reconstructing "state at time T" is
// a pure query over them.
type StatusChange struct {
	status     Status
	actorID    kernel.UUID
	note       string
	occurredAt time.Time
}

// RestoreStatusChange reconstructs an audit entry from persistence.
func RestoreStatusChange(status Status, actorID kernel.UUID, note string, occurredAt time.Time) StatusChange {
	return StatusChange{
		status:     status,
		actorID:    actorID,
		note:       note,
		occurredAt: occurredAt,
	}
}

// Status returns the status the shipment entered.
func (c StatusChange) Status() Status {
	return c.status
}

// ActorID returns the user who triggered the change.
func (c StatusChange) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional free-text note attached to the change.
func (c StatusChange) Note() string {
	return c.note
}

// OccurredAt returns when the change happened.
func (c StatusChange) OccurredAt() time.Time {
	return c.occurredAt
}
