//go:build unit

package validate_test

import (
	"testing"

	"flashbooth/internal/pkg/validate"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	valid := []string{
		"0612345678",
		"06 12 34 56 78",
		"01 23 45 67 89",
	}
	for _, phone := range valid {
		assert.NoError(t, validate.Phone(phone), "phone %q should be valid", phone)
	}

	cases := []struct {
		phone string
		errIs error
	}{
		{"", validate.ErrPhoneRequired},
		{"   ", validate.ErrPhoneRequired},
		{"12345", validate.ErrPhoneFormat},
		{"061234567890", validate.ErrPhoneFormat},
		{"06 12 34 56 7a", validate.ErrPhoneFormat},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, validate.Phone(tc.phone), tc.errIs, "phone %q", tc.phone)
	}
}

func TestFrenchPhone(t *testing.T) {
	t.Run("normalizes national numbers", func(t *testing.T) {
		cases := map[string]string{
			"0612345678":     "06 12 34 56 78",
			"06 12 34 56 78": "06 12 34 56 78",
			"06.12.34.56.78": "06 12 34 56 78",
			"06-12-34-56-78": "06 12 34 56 78",
		}
		for input, expected := range cases {
			got, err := validate.FrenchPhone(input)
			assert.NoError(t, err, "input %q", input)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("normalizes international numbers", func(t *testing.T) {
		cases := map[string]string{
			"+33612345678":      "+33 6 12 34 56 78",
			"+33 6 12 34 56 78": "+33 6 12 34 56 78",
		}
		for input, expected := range cases {
			got, err := validate.FrenchPhone(input)
			assert.NoError(t, err, "input %q", input)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		cases := []struct {
			phone string
			errIs error
		}{
			{"", validate.ErrPhoneRequired},
			{"123456", validate.ErrPhoneFormat},
			{"612345678", validate.ErrPhoneFormat},
			{"+3361234567", validate.ErrPhoneFormat},
			{"0012345678", validate.ErrPhonePrefix},
			{"+33012345678", validate.ErrPhonePrefix},
		}
		for _, tc := range cases {
			_, err := validate.FrenchPhone(tc.phone)
			assert.ErrorIs(t, err, tc.errIs, "phone %q", tc.phone)
		}
	})
}
