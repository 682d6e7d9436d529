// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves from Pending through driver-progress statuses to Delivered,
// or to Cancelled from any non-terminal status. Every transition appends to
// the order's timeline, the definitive audit history. The aggregate keeps
// status and timeline consistent and guards terminal statuses; the
// coupling between order assignment and driver state lives in the
// services.Dispatcher domain service.
package order
