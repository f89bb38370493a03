// Package order provides the Order aggregate: a paid canteen order with its
// lines, its priced bill, the payment settlement and its fulfillment status.
//
// The package includes:
//   - Order: the aggregate root, created once by the ledger and afterwards
//     only moved through its status machine
//   - Status: the state machine Received -> Preparing -> Ready -> Completed,
//     with Cancelled reachable from any non-terminal state
//   - Bill: subtotal, discount, tax, parcel fee and the derived grand total
//   - Settlement and PaymentMethod: how the order was paid and the change given
//   - Item: immutable line with a price snapshot
//   - Customer: display name and optional user id
//   - PlacedEvent and StatusChangedEvent: domain events published after commit
//
// Key business rules:
//   - grand total == subtotal + tax + parcel fee - discount, fixed at creation
//   - subtotal == sum of item totals
//   - status never regresses and never leaves Completed or Cancelled
//   - feedback is only accepted for Completed orders
package order
