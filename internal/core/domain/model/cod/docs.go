// Package cod provides domain entities for the cash-on-delivery ledger:
// collected amounts owed to merchants and the settlement batches that pay
// them out.
//
// The package includes:
//   - Record: One unit of cash collected at delivery time, created exactly
//     once per delivered COD shipment
//   - Settlement: A payable batch of a merchant's COLLECTED records with a
//     total fixed at creation time
//
// Key business rules:
//   - A record moves COLLECTED -> SETTLED through a confirmed settlement
//     and never back
//   - At most one PENDING settlement may exist per merchant at any time
//   - A settlement's total equals the sum of its linked records at creation
//     and is never recomputed
//   - Confirming payout on an already paid settlement is rejected without
//     altering the confirmation details
package cod
