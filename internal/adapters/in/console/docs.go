// Package console is the cashier's till: a line-oriented menu loop over
// stdin/stdout that edits one session cart, takes payment through the
// payment.Terminal it implements and prints bills, revenue and order
// history.
package console
