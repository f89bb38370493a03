// Package payment collects the money for a priced order before anything is
// written to the ledger.
//
// Collection is an interactive protocol driven through a Terminal: the
// console till, an HTTP request, or a test script. The processor asks for a
// method, then either reads tendered cash until it covers the amount or shows
// UPI instructions and waits for a manual confirmation. Invalid input is
// reported to the terminal and asked again; there is no retry limit and no
// timeout. A terminal ends collection early by returning ErrAborted, and a
// cancelled context does the same.
//
// Example:
//
//	processor, _ := payment.NewProcessor(payment.DefaultConfig())
//	settlement, err := processor.Collect(ctx, bill.GrandTotal(), reference.Short(), terminal)
//	if errors.Is(err, payment.ErrAborted) {
//	    // nothing was persisted, the cart is untouched
//	}
package payment
