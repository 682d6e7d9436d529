package kernel

import (
	"fmt"
	"math/rand"
	"time"

	"kurirkan/internal/pkg/errs"
)

const (
	orderNumberPrefix = "KK"
	orderNumberLength = 13 // "KK" + 8 timestamp digits + 3 random digits
)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString",
)

// OrderNumber is the human-readable order reference shown to customers and
// drivers: "KK" followed by the last eight digits of the creation time in
// epoch milliseconds and a zero-padded three-digit random suffix.
//
// Uniqueness is probabilistic, which is acceptable for a single-process,
// low-throughput dispatcher; entity identity always uses UUID, never this.
type OrderNumber struct {
	value string
}

// NewOrderNumber generates an order number for the current time.
func NewOrderNumber() OrderNumber {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	return OrderNumber{
		value: fmt.Sprintf("%s%s%03d", orderNumberPrefix, millis[len(millis)-8:], rand.Intn(1000)),
	}
}

// OrderNumberFromString parses an order number from persistence.
// Accepts only the "KK"+11-digit format produced by NewOrderNumber.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if len(s) != orderNumberLength || s[:2] != orderNumberPrefix {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber", fmt.Errorf("%q does not match the KK number format", s))
	}
	for _, r := range s[2:] {
		if r < '0' || r > '9' {
			return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"orderNumber", fmt.Errorf("%q does not match the KK number format", s))
		}
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number text.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual reports whether two order numbers are the same.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNumberIsNotConstructed for the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
