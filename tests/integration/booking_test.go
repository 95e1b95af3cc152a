//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"flashbooth/internal/domain/booking"
	"flashbooth/internal/domain/customer"
	"flashbooth/internal/domain/product"
	"flashbooth/internal/infra"
	"flashbooth/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingRepositoryTestSuite struct {
	suite.Suite
	pool         *pgxpool.Pool
	fixtures     *repositoryFixture
}

type repositoryFixture struct {
	productID uuid.UUID
}

func TestBookingRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	suite.Run(t, new(BookingRepositoryTestSuite))
}

func (s *BookingRepositoryTestSuite) SetupSuite() {
	s.pool = setupTestPool(s.T())
	s.fixtures = &repositoryFixture{productID: s.insertProduct()}
}

func (s *BookingRepositoryTestSuite) insertProduct() uuid.UUID {
	p, err := product.NewProduct("Classic Booth", "entry model", "/media/classic.jpg",
		650, "classic", []string{"unlimited prints"})
	require.NoError(s.T(), err)

	repo := repository.NewProductRepository(s.pool)
	require.NoError(s.T(), repo.Create(context.Background(), p))
	return p.ID()
}

func (s *BookingRepositoryTestSuite) TestCustomerUpsertKeyedByEmail() {
	ctx := context.Background()
	repo := repository.NewCustomerRepository(s.pool)

	first, err := customer.NewCustomer("Marie", "Dupont", "upsert@example.com", "06 12 34 56 78", "Paris")
	s.Require().NoError(err)
	firstID, err := repo.Upsert(ctx, s.pool, first)
	s.Require().NoError(err)

	// Same email, different details: must update in place, not create a row.
	second, err := customer.NewCustomer("Marie", "Martin", "upsert@example.com", "07 98 76 54 32", "Lyon")
	s.Require().NoError(err)
	secondID, err := repo.Upsert(ctx, s.pool, second)
	s.Require().NoError(err)

	s.Equal(firstID, secondID)

	var count int
	err = s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers WHERE email = $1", "upsert@example.com").Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)

	var lastName, phone string
	err = s.pool.QueryRow(ctx,
		"SELECT last_name, phone FROM customers WHERE id = $1", firstID).Scan(&lastName, &phone)
	s.Require().NoError(err)
	s.Equal("Martin", lastName)
	s.Equal("07 98 76 54 32", phone)
}

func (s *BookingRepositoryTestSuite) TestSlotUniqueness() {
	ctx := context.Background()
	customerRepo := repository.NewCustomerRepository(s.pool)
	bookingRepo := repository.NewBookingRepository(s.pool)

	contact, err := customer.NewCustomer("Jean", "Petit", "slot@example.com", "06 11 22 33 44", "Paris")
	s.Require().NoError(err)
	customerID, err := customerRepo.Upsert(ctx, s.pool, contact)
	s.Require().NoError(err)

	eventDate := time.Date(2026, 11, 21, 0, 0, 0, 0, time.UTC)
	duration, err := booking.NewDuration(4)
	s.Require().NoError(err)

	makeBooking := func() *booking.Booking {
		b, err := booking.NewBooking(customerID, s.fixtures.productID,
			eventDate, "19:00", duration, "Paris", "wedding", nil, nil, 650)
		s.Require().NoError(err)
		return b
	}

	_, err = bookingRepo.Create(ctx, s.pool, makeBooking())
	s.Require().NoError(err)

	// Second booking for the same product, date and time must trip the
	// slot constraint.
	_, err = bookingRepo.Create(ctx, s.pool, makeBooking())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
	s.Equal("bookings_slot_key", infra.ConstraintName(err))

	// A different time the same day is fine.
	b, err := booking.NewBooking(customerID, s.fixtures.productID,
		eventDate, "10:00", duration, "Paris", "wedding", nil, nil, 650)
	s.Require().NoError(err)
	_, err = bookingRepo.Create(ctx, s.pool, b)
	s.NoError(err)
}

func (s *BookingRepositoryTestSuite) TestBookingRoundTrip() {
	ctx := context.Background()
	customerRepo := repository.NewCustomerRepository(s.pool)
	bookingRepo := repository.NewBookingRepository(s.pool)

	contact, err := customer.NewCustomer("Alice", "Moreau", "roundtrip@example.com", "06 55 44 33 22", "Nice")
	s.Require().NoError(err)
	customerID, err := customerRepo.Upsert(ctx, s.pool, contact)
	s.Require().NoError(err)

	guests := int32(80)
	notes := "gold backdrop please"
	duration, _ := booking.NewDuration(6)
	created, err := booking.NewBooking(customerID, s.fixtures.productID,
		time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC), "20:30", duration,
		"Nice", "corporate", &guests, &notes, 650)
	s.Require().NoError(err)

	id, err := bookingRepo.Create(ctx, s.pool, created)
	s.Require().NoError(err)

	loaded, err := bookingRepo.FindByID(ctx, id)
	s.Require().NoError(err)
	s.Equal(booking.StatusPending, loaded.Status())
	s.Equal("20:30", loaded.EventTime())
	s.Equal(int32(975), loaded.TotalPrice())
	s.Require().NotNil(loaded.GuestsCount())
	s.Equal(int32(80), *loaded.GuestsCount())
	s.Require().NotNil(loaded.SpecialRequests())
	s.Equal(notes, *loaded.SpecialRequests())

	// Status and payment updates persist.
	s.Require().NoError(loaded.TransitionTo(booking.StatusConfirmed))
	loaded.SetDepositPaid(true)
	s.Require().NoError(loaded.SetDepositAmount(300))
	s.Require().NoError(bookingRepo.Update(ctx, s.pool, loaded))

	reloaded, err := bookingRepo.FindByID(ctx, id)
	s.Require().NoError(err)
	s.Equal(booking.StatusConfirmed, reloaded.Status())
	s.True(reloaded.DepositPaid())
	s.Equal(300.0, reloaded.DepositAmount())
}

func (s *BookingRepositoryTestSuite) TestCustomerDeleteRejectedWhileBooked() {
	ctx := context.Background()
	customerRepo := repository.NewCustomerRepository(s.pool)
	bookingRepo := repository.NewBookingRepository(s.pool)

	contact, err := customer.NewCustomer("Paul", "Garnier", "booked@example.com", "06 99 88 77 66", "Lille")
	s.Require().NoError(err)
	customerID, err := customerRepo.Upsert(ctx, s.pool, contact)
	s.Require().NoError(err)

	duration, _ := booking.NewDuration(4)
	b, err := booking.NewBooking(customerID, s.fixtures.productID,
		time.Date(2027, 2, 13, 0, 0, 0, 0, time.UTC), "14:00", duration,
		"Lille", "birthday", nil, nil, 650)
	s.Require().NoError(err)
	bookingID, err := bookingRepo.Create(ctx, s.pool, b)
	s.Require().NoError(err)

	// The FK has no cascade, so deleting a booked customer must fail and
	// leave the booking untouched.
	err = customerRepo.Delete(ctx, customerID)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindForeignKeyViolated))
	s.Equal("bookings_customer_id_fkey", infra.ConstraintName(err))

	var count int
	s.Require().NoError(s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM bookings WHERE id = $1", bookingID).Scan(&count))
	s.Equal(1, count)

	// Once the booking is gone the customer can be removed.
	_, err = s.pool.Exec(ctx, "DELETE FROM bookings WHERE id = $1", bookingID)
	s.Require().NoError(err)
	s.NoError(customerRepo.Delete(ctx, customerID))
}

func (s *BookingRepositoryTestSuite) TestAvailabilityBlocks() {
	ctx := context.Background()
	repo := repository.NewAvailabilityRepository(s.pool)

	productDate := time.Date(2027, 1, 9, 0, 0, 0, 0, time.UTC)
	globalDate := time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC)

	productID := s.fixtures.productID
	s.Require().NoError(repo.Insert(ctx, uuid.New(), &productID, productDate, nil))
	s.Require().NoError(repo.Insert(ctx, uuid.New(), nil, globalDate, nil))

	blocked, err := repo.IsBlocked(ctx, productID, productDate)
	s.Require().NoError(err)
	s.True(blocked, "product-specific block must apply")

	blocked, err = repo.IsBlocked(ctx, productID, globalDate)
	s.Require().NoError(err)
	s.True(blocked, "site-wide block must apply to every product")

	blocked, err = repo.IsBlocked(ctx, productID, time.Date(2027, 1, 11, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.False(blocked, "unblocked dates stay open")
}
