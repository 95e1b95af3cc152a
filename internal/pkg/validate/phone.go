package validate

import (
	"fmt"
	"strings"

	"flashbooth/internal/pkg/errs"
)

var (
	ErrPhoneRequired = errs.New("phone number is required")
	ErrPhoneFormat   = errs.New("phone number format is invalid")
	ErrPhonePrefix   = errs.New("phone number prefix is invalid")
)

var phoneStripper = strings.NewReplacer(" ", "", ".", "", "-", "", "(", "", ")", "")

// Phone checks the booking-form rule: exactly 10 digits once whitespace is removed.
func Phone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneRequired
	}
	cleaned := strings.ReplaceAll(phone, " ", "")
	if len(cleaned) != 10 || !isDigits(cleaned) {
		return ErrPhoneFormat
	}
	return nil
}

// FrenchPhone normalizes a French number into its canonically spaced form.
// Accepted shapes: national 0XXXXXXXXX (10 digits, second digit 1-9) and
// international +33XXXXXXXXX (9 digits after the prefix, first digit 1-9).
func FrenchPhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", ErrPhoneRequired
	}

	cleaned := phoneStripper.Replace(phone)

	if rest, ok := strings.CutPrefix(cleaned, "+33"); ok {
		if len(rest) != 9 || !isDigits(rest) {
			return "", ErrPhoneFormat
		}
		if rest[0] == '0' {
			return "", ErrPhonePrefix
		}
		return fmt.Sprintf("+33 %s %s %s %s %s",
			rest[0:1], rest[1:3], rest[3:5], rest[5:7], rest[7:9]), nil
	}

	if strings.HasPrefix(cleaned, "0") {
		if len(cleaned) != 10 || !isDigits(cleaned) {
			return "", ErrPhoneFormat
		}
		if cleaned[1] == '0' {
			return "", ErrPhonePrefix
		}
		return fmt.Sprintf("%s %s %s %s %s",
			cleaned[0:2], cleaned[2:4], cleaned[4:6], cleaned[6:8], cleaned[8:10]), nil
	}

	return "", ErrPhoneFormat
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
