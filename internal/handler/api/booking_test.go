//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"flashbooth/internal/handler/api"
	resdto "flashbooth/internal/handler/dto/response"
	"flashbooth/internal/handler/middleware"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"
	"flashbooth/tests/common/builder"
	"flashbooth/tests/common/httptest"
	commandsmock "flashbooth/tests/mock/commands"
	queriesmock "flashbooth/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockCommands        *commandsmock.MockBookingCommands
	mockBookingQueries  *queriesmock.MockBookingQueries
	mockProductQueries  *queriesmock.MockProductQueries
	handler             *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockBookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockProductQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(
		s.mockCommands, s.mockBookingQueries, s.mockProductQueries, middleware.NewMetrics(),
	)

	s.router.POST("/bookings", s.handler.Submit)
	s.router.POST("/bookings/validate", s.handler.ValidateStep)
	s.router.GET("/bookings/quote", s.handler.Quote)
	s.router.GET("/admin/bookings", s.handler.List)
	s.router.PATCH("/admin/bookings/:id/status", s.handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/bookings"
	form := builder.NewBookingFormBuilder()
	reqBody := form.BuildDTO()

	s.Run("success: returns 201 with the booking view", func() {
		view := form.BuildView()
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal(view.TotalPrice, response.TotalPrice)
	})

	s.Run("error: 400 with field map on validation failure", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(nil, &commands.ValidationError{Fields: map[string]string{
				"email": "Please enter a valid email",
			}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusBadRequest, rec.Code)
		var response resdto.ValidationErrorResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.False(response.Valid)
		s.Contains(response.Errors, "email")
	})

	s.Run("error: maps workflow errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "slot already booked", commandsError: commands.ErrSlotTaken, expectedStatus: http.StatusConflict},
			{name: "date blocked", commandsError: commands.ErrSlotBlocked, expectedStatus: http.StatusConflict},
			{name: "product unavailable", commandsError: commands.ErrProductUnavailable, expectedStatus: http.StatusUnprocessableEntity},
			{name: "email conflict", commandsError: commands.ErrEmailInUse, expectedStatus: http.StatusConflict},
			{name: "unexpected failure", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestValidateStep() {
	url := "/bookings/validate"

	s.Run("valid selection step", func() {
		body := map[string]any{
			"step": "selection",
			"form": builder.NewBookingFormBuilder().BuildDTO(),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.ValidationErrorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Empty(response.Errors)
	})

	s.Run("incomplete contact step lists broken fields", func() {
		form := builder.NewBookingFormBuilder()
		form.Email = "broken"
		form.Phone = ""
		body := map[string]any{"step": "contact", "form": form.BuildDTO()}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.ValidationErrorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Contains(response.Errors, "email")
		s.Contains(response.Errors, "phone")
		s.NotContains(response.Errors, "firstName")
	})

	s.Run("unknown step name is a bind error", func() {
		body := map[string]any{"step": "payment", "form": builder.NewBookingFormBuilder().BuildDTO()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestQuote() {
	productID := uuid.New()
	productView := &queries.ProductView{ID: productID, Name: "Classic Booth", Price: 650, Available: true}

	s.Run("success: scales the base price", func() {
		s.mockProductQueries.EXPECT().GetByID(gomock.Any(), productID).Return(productView, nil).Times(1)

		url := fmt.Sprintf("/bookings/quote?product_id=%s&duration=8", productID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(1300), response.TotalPrice)
		s.Equal(8, response.Duration)
	})

	s.Run("error: unsupported duration", func() {
		url := fmt.Sprintf("/bookings/quote?product_id=%s&duration=7", productID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unsupported rental duration")
	})

	s.Run("error: unknown product", func() {
		s.mockProductQueries.EXPECT().GetByID(gomock.Any(), productID).
			Return(nil, queries.ErrProductNotFound).Times(1)

		url := fmt.Sprintf("/bookings/quote?product_id=%s&duration=4", productID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("passes the status filter through", func() {
		items := []*queries.BookingListItem{{ID: uuid.New(), Status: "pending"}}
		s.mockBookingQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{Status: "pending"}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=pending", nil, "")

		var response []queries.BookingListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/admin/bookings/%s/status", bookingID)

	s.Run("success", func() {
		view := builder.NewBookingFormBuilder().BuildView()
		view.Status = "confirmed"
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: forbidden transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "pending").
			Return(nil, commands.ErrInvalidStatusChange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "pending"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: unknown booking", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed").
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/admin/bookings/not-a-uuid/status", map[string]any{"status": "confirmed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
