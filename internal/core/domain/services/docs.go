// Package services provides domain services that implement business
// operations spanning multiple entities of the parcel system.
//
// The package includes:
//   - PriceResolver: Resolves the locked price of a new shipment from the
//     tenant's pricing rules
//   - TrackingNumberGenerator: Produces collision-checked, human-readable
//     shipment identifiers
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
