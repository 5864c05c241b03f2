// Package ports defines the contracts between the storefront core and its
// infrastructure: repositories, the unit of work and event publishing.
//
// Adapters under internal/adapters implement these interfaces; application
// handlers depend only on them, which keeps handlers testable with mocks.
package ports
