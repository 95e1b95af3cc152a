//go:build unit

package booking_test

import (
	"testing"

	"flashbooth/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		name      string
		basePrice float64
		duration  booking.Duration
		expected  int32
	}{
		{name: "base duration keeps base price", basePrice: 650, duration: 4, expected: 650},
		{name: "double unit doubles price", basePrice: 650, duration: 8, expected: 1300},
		{name: "shorter rental scales down", basePrice: 650, duration: 3, expected: 488},
		{name: "five hours", basePrice: 650, duration: 5, expected: 813},
		{name: "six hours", basePrice: 650, duration: 6, expected: 975},
		{name: "rounds to nearest euro", basePrice: 750, duration: 3, expected: 563},
		{name: "premium booth full day", basePrice: 890, duration: 8, expected: 1780},
		{name: "zero base price quotes zero", basePrice: 0, duration: 4, expected: 0},
		{name: "negative base price quotes zero", basePrice: -10, duration: 4, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, booking.Quote(tc.basePrice, tc.duration))
		})
	}
}

func TestNewDuration(t *testing.T) {
	for _, hours := range []int{3, 4, 5, 6, 8} {
		d, err := booking.NewDuration(hours)
		assert.NoError(t, err)
		assert.Equal(t, hours, d.Hours())
	}

	for _, hours := range []int{0, 1, 2, 7, 9, 24, -4} {
		_, err := booking.NewDuration(hours)
		assert.ErrorIs(t, err, booking.ErrInvalidDuration, "duration %d should be rejected", hours)
	}
}
