package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"flashbooth/internal/handler/httperr"
	"flashbooth/internal/pkg/clock"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQueries  queries.CustomerQueries
	clock            clock.Clock
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQueries queries.CustomerQueries, clk clock.Clock) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQueries:  customerQueries,
		clock:            clk,
	}
}

// @Summary List customers
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.CustomerListItem
// @Router /admin/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	items, err := h.customerQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get one customer with booking history
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} queries.CustomerView
// @Failure 404 {object} httperr.Response
// @Router /admin/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer id", nil)
		return
	}

	view, err := h.customerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Export customers as CSV
// @Tags admin
// @Security BearerAuth
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /admin/customers/export [get]
func (h *CustomerHandler) Export(c *gin.Context) {
	rows, err := h.customerQueries.ExportRows(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	fileName := fmt.Sprintf("customers-%s.csv", h.clock.Now().Format(time.DateOnly))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(rows); err != nil {
		// Headers already sent, nothing else to do.
		return
	}
}

// @Summary Delete a customer
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Customer id"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer id", nil)
		return
	}

	if err := h.customerCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrCustomerHasBookings):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer still has bookings", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
