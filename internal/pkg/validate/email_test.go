//go:build unit

package validate_test

import (
	"testing"

	"flashbooth/internal/pkg/validate"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"marie.dupont@example.com",
		"jean+booking@gmail.com",
		"contact@sub.domain.fr",
	}
	for _, email := range valid {
		assert.NoError(t, validate.Email(email), "email %q should be valid", email)
	}

	cases := []struct {
		email string
		errIs error
	}{
		{"", validate.ErrEmailRequired},
		{"  ", validate.ErrEmailRequired},
		{"no-at-sign.com", validate.ErrEmailFormat},
		{"two@@signs.com", validate.ErrEmailFormat},
		{"no-tld@domain", validate.ErrEmailFormat},
		{"spaces in@mail.com", validate.ErrEmailFormat},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, validate.Email(tc.email), tc.errIs, "email %q", tc.email)
	}
}

func TestStrictEmail(t *testing.T) {
	t.Run("accepts allowlisted consumer domains", func(t *testing.T) {
		valid := []string{
			"marie.dupont@gmail.com",
			"jean.martin@orange.fr",
			"PIERRE@LAPOSTE.NET",
			"contact@protonmail.com",
		}
		for _, email := range valid {
			assert.NoError(t, validate.StrictEmail(email), "email %q should pass", email)
		}
	})

	t.Run("accepts plausible business domains", func(t *testing.T) {
		valid := []string{
			"contact@photobooth-events.fr",
			"hello@mycompany.com",
		}
		for _, email := range valid {
			assert.NoError(t, validate.StrictEmail(email), "email %q should pass", email)
		}
	})

	t.Run("rejects throwaway patterns", func(t *testing.T) {
		cases := []struct {
			email string
			errIs error
		}{
			{"test@test.fr", validate.ErrEmailSuspicious},
			{"admin@admin.com", validate.ErrEmailSuspicious},
			{"fake@fake.fr", validate.ErrEmailSuspicious},
			{"abc@qwerty.com", validate.ErrEmailSuspicious},
			{"someone@testdomain.fr", validate.ErrEmailSuspicious},
		}
		for _, tc := range cases {
			assert.ErrorIs(t, validate.StrictEmail(tc.email), tc.errIs, "email %q", tc.email)
		}
	})

	t.Run("rejects unknown TLDs and short domains", func(t *testing.T) {
		cases := []struct {
			email string
			errIs error
		}{
			{"someone@domain.xyz", validate.ErrEmailDomain},
			{"someone@abc.com", validate.ErrEmailDomain},
			{"", validate.ErrEmailRequired},
			{"broken@", validate.ErrEmailFormat},
		}
		for _, tc := range cases {
			assert.ErrorIs(t, validate.StrictEmail(tc.email), tc.errIs, "email %q", tc.email)
		}
	})
}
