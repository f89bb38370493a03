// Package services provides domain services of the canteen: business rules
// that work on several domain objects and belong to none of them.
//
// The package includes:
//   - PricingEngine: turns cart lines into a priced order.Bill under an
//     adjustable PricingPolicy
package services
