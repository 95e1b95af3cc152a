package api

import (
	"errors"
	"net/http"

	"flashbooth/internal/domain/booking"
	reqdto "flashbooth/internal/handler/dto/request"
	resdto "flashbooth/internal/handler/dto/response"
	"flashbooth/internal/handler/httperr"
	"flashbooth/internal/handler/middleware"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	productQueries  queries.ProductQueries
	metrics         *middleware.Metrics
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	productQueries queries.ProductQueries,
	metrics *middleware.Metrics,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		productQueries:  productQueries,
		metrics:         metrics,
	}
}

// @Summary Submit a booking
// @Description Validates the whole form, registers the customer and creates a pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking form"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} resdto.ValidationErrorResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordBookingOutcome("invalid")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.Submit(c.Request.Context(), req)
	if err != nil {
		var validationErr *commands.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.metrics.RecordBookingOutcome("invalid")
			c.JSON(http.StatusBadRequest, resdto.ValidationErrorResponse{
				Valid:  false,
				Errors: validationErr.Fields,
			})
		case errors.Is(err, commands.ErrSlotTaken):
			h.metrics.RecordBookingOutcome("slot_taken")
			httperr.AbortWithError(c, http.StatusConflict, err, "This slot has just been booked. Please pick another date or time.", nil)
		case errors.Is(err, commands.ErrSlotBlocked):
			h.metrics.RecordBookingOutcome("blocked")
			httperr.AbortWithError(c, http.StatusConflict, err, "This date is not available for the selected photobooth.", nil)
		case errors.Is(err, commands.ErrProductUnavailable):
			h.metrics.RecordBookingOutcome("invalid")
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "The selected photobooth is no longer available.", nil)
		case errors.Is(err, commands.ErrEmailInUse):
			h.metrics.RecordBookingOutcome("failed")
			httperr.AbortWithError(c, http.StatusConflict, err, "This email could not be registered.", nil)
		case errors.Is(err, booking.ErrInvalidEventDate), errors.Is(err, booking.ErrInvalidDuration),
			errors.Is(err, booking.ErrInvalidEventTime):
			h.metrics.RecordBookingOutcome("invalid")
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking details", nil)
		default:
			h.metrics.RecordBookingOutcome("failed")
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.metrics.RecordBookingOutcome("created")
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Validate one form step
// @Description Checks a single step of the booking form without persisting anything
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateStepRequest true "Step payload"
// @Success 200 {object} resdto.ValidationErrorResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/validate [post]
func (h *BookingHandler) ValidateStep(c *gin.Context) {
	var req reqdto.ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	var fieldErrs booking.FieldErrors
	switch req.Step {
	case "selection":
		fieldErrs = req.Form.SelectionStep().Validate()
	case "contact":
		fieldErrs = req.Form.ContactStep().Validate()
	}

	c.JSON(http.StatusOK, resdto.ValidationErrorResponse{
		Valid:  len(fieldErrs) == 0,
		Errors: fieldErrs,
	})
}

// @Summary Price quote
// @Description Returns the total price for a photobooth and duration
// @Tags bookings
// @Produce json
// @Param product_id query string true "Product id"
// @Param duration query int true "Rental duration in hours"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/quote [get]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	duration, err := booking.NewDuration(req.Duration)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported rental duration", gin.H{
			"valid_durations": booking.ValidDurations(),
		})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	product, err := h.productQueries.GetByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{
		ProductID:  product.ID,
		Duration:   int(duration),
		TotalPrice: booking.Quote(product.Price, duration),
	})
}

// @Summary List bookings
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} queries.BookingListItem
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filter := queries.BookingFilter{Status: c.Query("status")}

	items, err := h.bookingQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get one booking
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrInvalidStatusChange):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Status change not allowed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking payment flags
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body reqdto.UpdateBookingPaymentRequest true "Payment patch"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id}/payment [patch]
func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	var req reqdto.UpdateBookingPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, booking.ErrNegativeAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Amounts cannot be negative", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
