// Package shipment provides domain entities and business logic for the parcel
// lifecycle. It implements the Shipment aggregate root with its status state
// machine, delivery-attempt policy, and append-only audit trail.
//
// The package includes:
//   - Shipment: The aggregate root owning the authoritative status, identity
//     references, locked price, and COD amount
//   - Status: A state machine whose legal transitions are held in a single
//     table, checked once per requested change
//   - StatusChange: An immutable audit entry appended on every status change
//   - Recipient: A value object for the delivery contact and zone
//
// Key business rules:
//   - Transitions outside the table are rejected naming both statuses
//   - A FAILED_ATTEMPT transition increments the attempt counter; reaching
//     the configured ceiling forces RETURN_IN_PROGRESS instead
//   - Delivering a COD-bearing shipment requires a collected amount within
//     one cent of the shipment's COD amount
//   - DELIVERED, RETURNED and CANCELLED are terminal; shipments are never
//     physically deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
