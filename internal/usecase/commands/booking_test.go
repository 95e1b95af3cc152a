//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flashbooth/internal/domain/booking"
	"flashbooth/internal/domain/product"
	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/commands"
	"flashbooth/tests/common/builder"
	commandsmock "flashbooth/tests/mock/commands"
	queriesmock "flashbooth/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockBookingRepo  *commandsmock.MockBookingRepository
	mockCustomerRepo *commandsmock.MockCustomerRepository
	mockProductRepo  *commandsmock.MockProductSnapshotRepository
	mockAvailability *commandsmock.MockAvailabilityChecker
	mockQueries      *queriesmock.MockBookingQueries
	commands         commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockCustomerRepo = commandsmock.NewMockCustomerRepository(s.mockCtrl)
	s.mockProductRepo = commandsmock.NewMockProductSnapshotRepository(s.mockCtrl)
	s.mockAvailability = commandsmock.NewMockAvailabilityChecker(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	// The pool is only touched once the workflow opens a transaction; the
	// paths under test all resolve before that.
	s.commands = commands.NewBookingCommands(
		s.mockBookingRepo,
		s.mockCustomerRepo,
		s.mockProductRepo,
		s.mockAvailability,
		s.mockQueries,
		nil,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func paymentPatch(depositPaid, fullPaymentPaid *bool, depositAmount, paidAmount *float64) reqdto.UpdateBookingPaymentRequest {
	return reqdto.UpdateBookingPaymentRequest{
		DepositPaid:     depositPaid,
		FullPaymentPaid: fullPaymentPaid,
		DepositAmount:   depositAmount,
		PaidAmount:      paidAmount,
	}
}

func availableProduct(id uuid.UUID) *product.Product {
	return product.ReconstructProduct(
		id, "Classic Booth", "Our entry model", "/media/classic.jpg",
		650, "classic", []string{"unlimited prints"}, true,
		time.Now(), time.Now(),
	)
}

func (s *BookingCommandsTestSuite) TestSubmitValidation() {
	s.Run("incomplete form returns per-field errors", func() {
		form := builder.NewBookingFormBuilder().BuildDTO()
		form.Email = "not-an-email"
		form.Address = ""

		_, err := s.commands.Submit(context.Background(), form)

		var validationErr *commands.ValidationError
		s.Require().ErrorAs(err, &validationErr)
		s.Contains(validationErr.Fields, "email")
		s.Contains(validationErr.Fields, "address")
		s.NotContains(validationErr.Fields, "firstName")
	})

	s.Run("empty form reports every field", func() {
		var form = builder.NewBookingFormBuilder()
		form.ProductID = ""
		form.EventDate = ""
		form.EventTime = ""
		form.FirstName = ""
		form.LastName = ""
		form.Email = ""
		form.Phone = ""
		form.Address = ""
		form.EventType = ""

		_, err := s.commands.Submit(context.Background(), form.BuildDTO())

		var validationErr *commands.ValidationError
		s.Require().ErrorAs(err, &validationErr)
		s.Len(validationErr.Fields, 9)
	})

	s.Run("malformed product id reads as unavailable", func() {
		form := builder.NewBookingFormBuilder()
		form.ProductID = "not-a-uuid"

		_, err := s.commands.Submit(context.Background(), form.BuildDTO())
		s.ErrorIs(err, commands.ErrProductUnavailable)
	})

	s.Run("invalid duration is rejected before any lookup", func() {
		form := builder.NewBookingFormBuilder()
		form.Duration = 7

		_, err := s.commands.Submit(context.Background(), form.BuildDTO())
		s.ErrorIs(err, booking.ErrInvalidDuration)
	})
}

func (s *BookingCommandsTestSuite) TestSubmitProductResolution() {
	s.Run("unknown product", func() {
		form := builder.NewBookingFormBuilder().BuildDTO()
		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), uuid.MustParse(form.ProductID)).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := s.commands.Submit(context.Background(), form)
		s.ErrorIs(err, commands.ErrProductUnavailable)
	})

	s.Run("product marked unavailable", func() {
		form := builder.NewBookingFormBuilder().BuildDTO()
		productID := uuid.MustParse(form.ProductID)
		unavailable := product.ReconstructProduct(
			productID, "Retired Booth", "", "", 500, "classic", nil, false,
			time.Now(), time.Now(),
		)
		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), productID).Return(unavailable, nil)

		_, err := s.commands.Submit(context.Background(), form)
		s.ErrorIs(err, commands.ErrProductUnavailable)
	})

	s.Run("lookup failure surfaces as database error", func() {
		form := builder.NewBookingFormBuilder().BuildDTO()
		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := s.commands.Submit(context.Background(), form)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *BookingCommandsTestSuite) TestSubmitBlockedDate() {
	form := builder.NewBookingFormBuilder().BuildDTO()
	productID := uuid.MustParse(form.ProductID)

	s.mockProductRepo.EXPECT().FindByID(gomock.Any(), productID).
		Return(availableProduct(productID), nil)
	s.mockAvailability.EXPECT().IsBlocked(gomock.Any(), productID, gomock.Any()).
		Return(true, nil)

	_, err := s.commands.Submit(context.Background(), form)
	s.ErrorIs(err, commands.ErrSlotBlocked)
}

func (s *BookingCommandsTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()

	pendingBooking := func() *booking.Booking {
		return booking.ReconstructBooking(
			bookingID, uuid.New(), uuid.New(),
			time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), "18:00", 4,
			"addr", "wedding", nil, nil, 650,
			booking.StatusPending, false, false, 0, 0,
			time.Now(), time.Now(),
		)
	}

	s.Run("pending can be confirmed", func() {
		view := builder.NewBookingFormBuilder().BuildView()
		view.Status = "confirmed"

		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(pendingBooking(), nil)
		s.mockBookingRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).Return(view, nil)

		got, err := s.commands.UpdateStatus(context.Background(), bookingID, "confirmed")
		s.Require().NoError(err)
		s.Equal("confirmed", got.Status)
	})

	s.Run("pending cannot be completed directly", func() {
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(pendingBooking(), nil)

		_, err := s.commands.UpdateStatus(context.Background(), bookingID, "completed")
		s.ErrorIs(err, commands.ErrInvalidStatusChange)
	})

	s.Run("unknown status is rejected without a lookup", func() {
		_, err := s.commands.UpdateStatus(context.Background(), bookingID, "archived")
		s.ErrorIs(err, commands.ErrInvalidStatusChange)
	})

	s.Run("missing booking", func() {
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := s.commands.UpdateStatus(context.Background(), bookingID, "confirmed")
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestUpdatePayment() {
	bookingID := uuid.New()

	existing := func() *booking.Booking {
		return booking.ReconstructBooking(
			bookingID, uuid.New(), uuid.New(),
			time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), "18:00", 4,
			"addr", "wedding", nil, nil, 650,
			booking.StatusConfirmed, false, false, 0, 0,
			time.Now(), time.Now(),
		)
	}

	s.Run("applies only the provided fields", func() {
		depositPaid := true
		depositAmount := 200.0
		view := builder.NewBookingFormBuilder().BuildView()

		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(existing(), nil)
		s.mockBookingRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				s.True(b.DepositPaid())
				s.Equal(200.0, b.DepositAmount())
				s.False(b.FullPaymentPaid())
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).Return(view, nil)

		_, err := s.commands.UpdatePayment(context.Background(), bookingID, paymentPatch(&depositPaid, nil, &depositAmount, nil))
		s.NoError(err)
	})

	s.Run("negative amount is rejected", func() {
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(existing(), nil)

		bad := -50.0
		_, err := s.commands.UpdatePayment(context.Background(), bookingID, paymentPatch(nil, nil, &bad, nil))
		s.ErrorIs(err, booking.ErrNegativeAmount)
	})
}
