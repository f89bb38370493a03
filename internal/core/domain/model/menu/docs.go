// Package menu provides the MenuItem aggregate of the canteen catalog.
//
// A MenuItem owns its stock count. Stock is only ever changed through the
// aggregate's methods, so the non-negative invariant holds for every
// instance, whether it was just created or restored from storage:
//   - Withdraw removes units sold by an order and fails with
//     errs.InsufficientStockError when the count would go negative
//   - Restock adds units delivered to the kitchen
//   - SetStock overwrites the count after a physical stock-take
//
// Items are never deleted; the catalog only grows.
package menu
