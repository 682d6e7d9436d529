// Package ports defines the outbound contracts of the application core:
// repository interfaces for each aggregate, the unit of work transaction
// boundary, and the collection store that backs persistence.
//
// Adapters in internal/adapters/out implement these interfaces; use cases
// in internal/core/application depend only on the interfaces.
package ports
