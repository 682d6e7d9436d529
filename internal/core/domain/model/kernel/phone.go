package kernel

import (
	"strings"

	"kurirkan/internal/pkg/errs"
)

const countryCode = "62"

// ErrPhoneIsRequired is returned when a phone number contains no digits at all.
var ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")

// Phone is a canonicalized Indonesian phone number.
//
// NewPhone strips every non-digit character, then normalizes the country
// code: a leading "0" is replaced with "62", and a number that does not
// already start with "62" gets "62" prepended. This is canonicalization,
// not validation - a number that is too short is still accepted.
type Phone struct {
	value string
}

// NewPhone canonicalizes a raw phone number.
// Returns ErrPhoneIsRequired if the input contains no digits.
func NewPhone(raw string) (Phone, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()
	if phone == "" {
		return Phone{}, ErrPhoneIsRequired
	}

	switch {
	case strings.HasPrefix(phone, "0"):
		phone = countryCode + phone[1:]
	case !strings.HasPrefix(phone, countryCode):
		phone = countryCode + phone
	}

	return Phone{value: phone}, nil
}

// String returns the canonical digits-only form, starting with "62".
func (p Phone) String() string {
	return p.value
}

// IsEqual reports whether two phone numbers are the same after canonicalization.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate returns ErrPhoneIsRequired for the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsRequired
	}
	return nil
}
