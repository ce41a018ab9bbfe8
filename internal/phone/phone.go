// Package phone canonicalizes user-supplied phone numbers into E.164 form.
// The stored representation is always international; the country code is
// re-derived from the parsed number and never trusted verbatim from the
// caller.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"cardlink-backend/internal/validate"
)

// Normalize validates and canonicalizes a phone number. mobile may be a
// bare national number paired with countryCode ("+91"), or an already
// international "+…" string, in which case countryCode is ignored and
// derived from the parse instead. Returns the E.164 number and "+<cc>".
func Normalize(mobile, countryCode string) (string, string, *validate.FieldError) {
	mobile = strings.TrimSpace(mobile)
	countryCode = strings.TrimSpace(countryCode)

	if strings.HasPrefix(mobile, "+") {
		parsed, err := phonenumbers.Parse(mobile, "")
		if err == nil && phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164),
				fmt.Sprintf("+%d", parsed.GetCountryCode()),
				nil
		}
		if countryCode == "" {
			return "", "", validate.NewFieldError("mobile_number", "Mobile number is invalid.")
		}
		// fall through: treat it like a raw number and retry with the
		// claimed country code
	}

	if mobile == "" || countryCode == "" {
		return "", "", validate.NonField("Mobile number and country code are required.")
	}

	full := countryCode + mobile
	parsed, err := phonenumbers.Parse(full, "")
	if err != nil {
		return "", "", validate.NewFieldError("mobile_number", "Mobile number could not be parsed.")
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", "", validate.NewFieldError("mobile_number", "Mobile number is invalid.")
	}

	return phonenumbers.Format(parsed, phonenumbers.E164),
		fmt.Sprintf("+%d", parsed.GetCountryCode()),
		nil
}

// Display strips the country-code prefix so API consumers see the local
// part while the store keeps the canonical international form.
func Display(e164, countryCode string) string {
	if countryCode != "" && strings.HasPrefix(e164, countryCode) {
		return e164[len(countryCode):]
	}
	return e164
}
