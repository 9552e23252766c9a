// Package phone formats stored phone strings for display.
// It never changes stored data; validation lives in the customer package.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Format renders input for display. Valid numbers from region use the
// national format, valid numbers from elsewhere the international format.
// Anything else is returned trimmed and unchanged.
func Format(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	if phonenumbers.GetRegionCodeForNumber(number) == region {
		return phonenumbers.Format(number, phonenumbers.NATIONAL)
	}
	return phonenumbers.Format(number, phonenumbers.INTERNATIONAL)
}
