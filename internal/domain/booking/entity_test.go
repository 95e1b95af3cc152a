//go:build unit

package booking_test

import (
	"testing"
	"time"

	"flashbooth/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingBooking(t *testing.T) *booking.Booking {
	t.Helper()
	duration, err := booking.NewDuration(4)
	require.NoError(t, err)

	b, err := booking.NewBooking(
		uuid.New(), uuid.New(),
		time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		"18:00", duration,
		"12 rue de la Paix, Paris", "wedding",
		nil, nil,
		650,
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending with nothing paid", func(t *testing.T) {
		b := newPendingBooking(t)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.False(t, b.DepositPaid())
		assert.False(t, b.FullPaymentPaid())
		assert.Equal(t, int32(650), b.TotalPrice())
	})

	t.Run("derives total from base price and duration", func(t *testing.T) {
		duration, _ := booking.NewDuration(8)
		b, err := booking.NewBooking(
			uuid.New(), uuid.New(),
			time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
			"14:30", duration,
			"addr", "birthday", nil, nil, 650,
		)
		require.NoError(t, err)
		assert.Equal(t, int32(1300), b.TotalPrice())
	})

	t.Run("rejects malformed event times", func(t *testing.T) {
		duration, _ := booking.NewDuration(4)
		for _, eventTime := range []string{"24:00", "18:60", "6pm", "", "8:00", "18h00"} {
			_, err := booking.NewBooking(
				uuid.New(), uuid.New(),
				time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
				eventTime, duration,
				"addr", "wedding", nil, nil, 650,
			)
			assert.ErrorIs(t, err, booking.ErrInvalidEventTime, "time %q should be rejected", eventTime)
		}
	})

	t.Run("accepts edge-of-day event times", func(t *testing.T) {
		duration, _ := booking.NewDuration(4)
		for _, eventTime := range []string{"00:00", "23:59", "09:05"} {
			_, err := booking.NewBooking(
				uuid.New(), uuid.New(),
				time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
				eventTime, duration,
				"addr", "wedding", nil, nil, 650,
			)
			assert.NoError(t, err, "time %q should be accepted", eventTime)
		}
	})

	t.Run("rejects zero event date", func(t *testing.T) {
		duration, _ := booking.NewDuration(4)
		_, err := booking.NewBooking(
			uuid.New(), uuid.New(),
			time.Time{}, "18:00", duration,
			"addr", "wedding", nil, nil, 650,
		)
		assert.ErrorIs(t, err, booking.ErrInvalidEventDate)
	})
}

func TestTransitionTo(t *testing.T) {
	allStatuses := []booking.Status{
		booking.StatusPending, booking.StatusConfirmed,
		booking.StatusCompleted, booking.StatusCancelled,
	}

	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:   {booking.StatusConfirmed, booking.StatusCancelled},
		booking.StatusConfirmed: {booking.StatusCompleted, booking.StatusCancelled},
		booking.StatusCompleted: {},
		booking.StatusCancelled: {},
	}

	isAllowed := func(from, to booking.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			from, to := from, to
			t.Run(from.String()+" to "+to.String(), func(t *testing.T) {
				b := newPendingBooking(t)
				reconstructed := booking.ReconstructBooking(
					b.ID(), b.CustomerID(), b.ProductID(),
					b.EventDate(), b.EventTime(), b.Duration(),
					b.Address(), b.EventType(), nil, nil,
					b.TotalPrice(), from, false, false, 0, 0,
					time.Now(), time.Now(),
				)

				err := reconstructed.TransitionTo(to)
				if isAllowed(from, to) {
					assert.NoError(t, err)
					assert.Equal(t, to, reconstructed.Status())
				} else {
					assert.ErrorIs(t, err, booking.ErrInvalidTransition)
					assert.Equal(t, from, reconstructed.Status())
				}
			})
		}
	}

	t.Run("rejects unknown status", func(t *testing.T) {
		b := newPendingBooking(t)
		assert.ErrorIs(t, b.TransitionTo(booking.Status("archived")), booking.ErrInvalidStatus)
	})

	t.Run("terminal statuses report as terminal", func(t *testing.T) {
		b := newPendingBooking(t)
		assert.False(t, b.IsTerminal())
		require.NoError(t, b.TransitionTo(booking.StatusCancelled))
		assert.True(t, b.IsTerminal())
	})
}

func TestPaymentSetters(t *testing.T) {
	b := newPendingBooking(t)

	require.NoError(t, b.SetDepositAmount(200))
	assert.Equal(t, float64(200), b.DepositAmount())

	require.NoError(t, b.SetPaidAmount(650))
	assert.Equal(t, float64(650), b.PaidAmount())

	assert.ErrorIs(t, b.SetDepositAmount(-1), booking.ErrNegativeAmount)
	assert.ErrorIs(t, b.SetPaidAmount(-0.01), booking.ErrNegativeAmount)

	b.SetDepositPaid(true)
	b.SetFullPaymentPaid(true)
	assert.True(t, b.DepositPaid())
	assert.True(t, b.FullPaymentPaid())
}
