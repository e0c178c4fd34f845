// Package order provides domain entities and business logic for order
// management on the Wroom platform. It implements the Order aggregate root
// with lifecycle management and per-role state transitions.
//
// The package includes:
//   - Order: The aggregate root holding parties, line items and lifecycle state
//   - LineItem: A value object snapshotting an item's price at placement
//   - Status: A state machine with independent restaurant and courier tracks
//
// Key business rules:
//   - Orders belong to exactly one customer and one restaurant, fixed at creation
//   - The total price is snapshotted from line items and never recomputed
//   - The restaurant walks Pending -> Accepted -> Preparing -> ReadyForPickup,
//     with Canceled reachable from each of those stages
//   - A courier claims a ReadyForPickup order exactly once, then walks
//     WaitingForPickup -> InTransit -> Completed; couriers cannot cancel
//   - Completed and Canceled are terminal resting states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
