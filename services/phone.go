package services

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// mpesaRegion is the numbering plan used to validate M-Pesa phone numbers.
const mpesaRegion = "KE"

// ErrPhoneRequired blocks an M-Pesa submission before any network call.
var ErrPhoneRequired = fmt.Errorf("phone number is required for M-Pesa payments")

// ValidateMpesaPhone checks that a phone number is present and valid for the
// Kenyan numbering plan. Accepts local (0712345678) and international
// (254712345678, +254712345678) forms.
func ValidateMpesaPhone(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrPhoneRequired
	}

	num, err := phonenumbers.Parse(raw, mpesaRegion)
	if err != nil {
		return fmt.Errorf("invalid phone number: %v", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return fmt.Errorf("invalid phone number for M-Pesa")
	}
	return nil
}
