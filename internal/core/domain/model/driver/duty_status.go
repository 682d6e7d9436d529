package driver

import (
	"kurirkan/internal/pkg/errs"
)

// DutyStatus represents a driver's availability state.
//
// OnDuty and OffDuty are toggled directly by the driver; Busy is set only by
// the dispatch transaction together with a current order, and cleared only
// when that order reaches a terminal status.
type DutyStatus int

const (
	// UnknownDuty represents an invalid or undefined duty status.
	UnknownDuty DutyStatus = iota

	// OnDuty means the driver is available for dispatch.
	OnDuty

	// OffDuty means the driver is not working.
	OffDuty

	// Busy means the driver has a current order. Never set without one.
	Busy
)

func getDutyStatusStrings() map[DutyStatus]string {
	return map[DutyStatus]string{
		UnknownDuty: "unknown",
		OnDuty:      "on_duty",
		OffDuty:     "off_duty",
		Busy:        "busy",
	}
}

// DutyStatusFromString parses a duty status from its wire name.
func DutyStatusFromString(s string) (DutyStatus, error) {
	for status, name := range getDutyStatusStrings() {
		if name == s && status != UnknownDuty {
			return status, nil
		}
	}
	return UnknownDuty, errs.NewValueIsInvalidError("driverStatus")
}

// String returns the snake_case wire name of the duty status.
func (s DutyStatus) String() string {
	if str, ok := getDutyStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the duty status is one of the defined states.
func (s DutyStatus) Validate() error {
	if s != OnDuty && s != OffDuty && s != Busy {
		return errs.NewValueIsInvalidError("driverStatus")
	}
	return nil
}
