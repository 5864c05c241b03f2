// Package services contains the stateless domain services of the storefront.
//
// The package includes:
//   - AvailabilityEvaluator: decides whether the store is open, in its pre-order window, or closed
//   - PricingEngine: turns a cart into a quote with subtotal, delivery fee, platform fee and total
//   - EligibilityGuard: gates cart increments and checkout on account, hours and delivery range
//
// Services never touch storage. Callers load aggregates, pass them in together
// with the current instant, and persist whatever comes out.
package services
