//go:build unit

package booking_test

import (
	"testing"

	"flashbooth/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func validSelection() booking.SelectionStep {
	return booking.SelectionStep{
		ProductID: "0d3e52a8-1f3a-4a59-9f58-3d1d2f4b7c11",
		EventDate: "2026-10-17",
		EventTime: "18:00",
	}
}

func validContact() booking.ContactStep {
	return booking.ContactStep{
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie.dupont@example.com",
		Phone:     "06 12 34 56 78",
		Address:   "12 rue de la Paix, 75002 Paris",
		EventType: "wedding",
	}
}

func TestSelectionStepValidate(t *testing.T) {
	t.Run("complete step is valid", func(t *testing.T) {
		assert.Empty(t, validSelection().Validate())
	})

	t.Run("every missing field gets its own message", func(t *testing.T) {
		fieldErrs := booking.SelectionStep{}.Validate()
		want := booking.FieldErrors{
			"product": "Please select a photobooth",
			"date":    "Please select a date",
			"time":    "Please select a time",
		}
		if diff := cmp.Diff(want, fieldErrs); diff != "" {
			t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("whitespace only counts as missing", func(t *testing.T) {
		s := validSelection()
		s.EventDate = "   "
		fieldErrs := s.Validate()
		assert.Contains(t, fieldErrs, "date")
		assert.NotContains(t, fieldErrs, "product")
	})
}

func TestContactStepValidate(t *testing.T) {
	t.Run("complete step is valid", func(t *testing.T) {
		assert.Empty(t, validContact().Validate())
	})

	t.Run("empty form reports all six fields", func(t *testing.T) {
		fieldErrs := booking.ContactStep{}.Validate()
		assert.Len(t, fieldErrs, 6)
		for _, field := range []string{"firstName", "lastName", "email", "phone", "address", "eventType"} {
			assert.Contains(t, fieldErrs, field)
		}
	})

	t.Run("malformed email gets the format message", func(t *testing.T) {
		c := validContact()
		c.Email = "not-an-email"
		fieldErrs := c.Validate()
		assert.Equal(t, "Please enter a valid email", fieldErrs["email"])
	})

	t.Run("phone must have ten digits", func(t *testing.T) {
		c := validContact()
		c.Phone = "12345"
		fieldErrs := c.Validate()
		assert.Equal(t, "Please enter a valid phone number (10 digits)", fieldErrs["phone"])
	})

	t.Run("spaced phone passes", func(t *testing.T) {
		c := validContact()
		c.Phone = "06 12 34 56 78"
		assert.NotContains(t, c.Validate(), "phone")
	})
}
