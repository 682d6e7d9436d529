// Package services contains domain services: operations that span multiple
// aggregates and cannot live inside a single one.
//
// Dispatcher couples the order and driver sides of an assignment so the
// marketplace invariants hold: a driver carries at most one active order,
// and an order's driver reference and the driver's current order reference
// always agree. Notifier derives the user-facing notification records that
// every lifecycle transition emits.
//
// Domain services are stateless. They mutate the aggregates handed to them
// and leave persistence to the calling use case.
package services
