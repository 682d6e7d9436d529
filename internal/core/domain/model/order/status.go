package order

import (
	"kurirkan/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct dispatch workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> DriverOnWay ──> PickedUp ──> InTransit ──> Delivered
//	   │            │             │              │             │
//	   └────────────┴─────────────┴──────────────┴─────────────┴──────> Cancelled
//
// Pending to Assigned is reachable only through the dispatch path
// (Order.Assign); Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order sits in the dispatch queue
	// waiting for a driver.
	Pending

	// Assigned indicates a driver has been assigned through dispatch.
	Assigned

	// DriverOnWay indicates the assigned driver is heading to the pickup address.
	DriverOnWay

	// PickedUp indicates the driver has collected the item (or passenger).
	PickedUp

	// InTransit indicates the driver is en route to the delivery address.
	InTransit

	// Delivered indicates successful completion. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Pending:     "pending",
		Assigned:    "assigned",
		DriverOnWay: "driver_on_way",
		PickedUp:    "picked_up",
		InTransit:   "in_transit",
		Delivered:   "delivered",
		Cancelled:   "cancelled",
	}
}

// allowedTransitions is the full transition table of the lifecycle machine.
// Absence of a target means the transition is rejected.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:     {Assigned, Cancelled},
		Assigned:    {DriverOnWay, Cancelled},
		DriverOnWay: {PickedUp, Cancelled},
		PickedUp:    {InTransit, Cancelled},
		InTransit:   {Delivered, Cancelled},
		Delivered:   {},
		Cancelled:   {},
	}
}

// StatusFromString parses a status from its wire name ("pending", "picked_up", ...).
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// String returns the snake_case wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := allowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a transition and returns the new status.
//
// Returns an InvalidTransitionError if the target is not reachable from the
// current status, including any transition attempted from a terminal status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
}
