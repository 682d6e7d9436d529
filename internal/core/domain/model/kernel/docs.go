// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID), human-readable order numbers, and canonicalized
// phone numbers.
//
// All kernel types are immutable value objects. Zero values are invalid and
// fail Validate; instances must be created through the provided constructor
// functions.
package kernel
