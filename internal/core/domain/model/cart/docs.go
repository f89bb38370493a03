// Package cart provides the per-session order draft.
//
// A Cart belongs to exactly one session and is never shared between
// customers. It keeps its lines in the order they were first added, and it
// captures each item's price at add time, so the bill shown before payment
// matches the bill that is stored.
//
// Stock is checked when an item is added, but only as a courtesy to the
// customer: the authoritative check happens when the order is committed.
//
// Every mutation bumps Version. Checkout snapshots the lines together with
// the version and clears the cart afterwards only if the version did not move
// in the meantime.
package cart
