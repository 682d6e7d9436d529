// Package settings contains the operational parameters of the dispatcher,
// stored as a single document in the settings collection.
package settings

import (
	"kurirkan/internal/pkg/errs"
)

// Defaults applied when the settings collection has never been written.
const (
	DefaultOrderTimeoutMinutes = 60
	DefaultQueueCheckMinutes   = 5
	DefaultAutoCleanupDays     = 30
	DefaultOperatingHoursStart = "06:00"
	DefaultOperatingHoursEnd   = "22:00"
)

// OperatingHours is the daily service window, "HH:MM" local time.
type OperatingHours struct {
	Start string
	End   string
}

// AppSettings holds the tunable dispatch parameters.
//
//   - OrderTimeoutMinutes: pending orders older than this are auto-cancelled
//     by the queue timeout job
//   - QueueCheckMinutes: how often the timeout job inspects the queue
//   - AutoCleanupDays: read notifications older than this are pruned
type AppSettings struct {
	OrderTimeoutMinutes int
	QueueCheckMinutes   int
	AutoCleanupDays     int
	OperatingHours      OperatingHours
}

// Default returns the settings used before any have been saved.
func Default() AppSettings {
	return AppSettings{
		OrderTimeoutMinutes: DefaultOrderTimeoutMinutes,
		QueueCheckMinutes:   DefaultQueueCheckMinutes,
		AutoCleanupDays:     DefaultAutoCleanupDays,
		OperatingHours: OperatingHours{
			Start: DefaultOperatingHoursStart,
			End:   DefaultOperatingHoursEnd,
		},
	}
}

// Validate checks that every interval is positive.
func (s AppSettings) Validate() error {
	if s.OrderTimeoutMinutes <= 0 {
		return errs.NewValueIsInvalidError("orderTimeoutMinutes")
	}
	if s.QueueCheckMinutes <= 0 {
		return errs.NewValueIsInvalidError("queueCheckMinutes")
	}
	if s.AutoCleanupDays <= 0 {
		return errs.NewValueIsInvalidError("autoCleanupDays")
	}
	return nil
}
