// Package order provides the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root holding an immutable snapshot of what the customer bought
//   - Item: one frozen line of the snapshot (menu item id, name, quantity, unit price)
//   - Charges: the price breakdown captured when the order was placed
//   - Status: the lifecycle with an explicit transition table
//
// Key business rules:
//   - Items and charges are fixed at placement; later menu edits never touch them
//   - Total always equals subtotal + delivery fee + platform fee
//   - Status moves only along the transition table; everything else is an invalid transition
//   - Placing an order and every status change raise a domain event
//
// Status graph:
//
//	pending_payment ──> preparing ──> ready ──> on_the_way ──> delivered
//	       │                │           │            │             │
//	       v                └───────────┴────────────┴─────────────┴──> refunded
//	   rejected
package order
