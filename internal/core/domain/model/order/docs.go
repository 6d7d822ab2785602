// Package order provides domain entities and business logic for the
// quote-to-fulfillment lifecycle. It implements the Order aggregate root with
// lifecycle management, derived financial totals and the warehouse
// preparation checklist.
//
// The package includes:
//   - Order: The aggregate root owning status, line items, totals and audit stamps
//   - Status: A state machine that enforces valid lifecycle transitions
//   - Command: The operations the transition table authorizes per role
//   - LineItem, CustomerInfo, ShippingAddress, PaymentMethod: value objects
//   - Totals / CalculateTotals: the financial aggregator
//
// Key business rules:
//   - Totals are recomputed from line items and terms on every mutation,
//     never accepted from callers
//   - Status only moves along defined edges; approvals chain atomically into
//     the next queue state
//   - Delivered, Rejected and Cancelled are terminal: no further mutation
//   - Rejection and cancellation require a non-empty reason and record the
//     acting identity
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
