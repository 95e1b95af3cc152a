package api

import (
	"errors"
	"net/http"

	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/handler/httperr"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
	availabilityQueries  queries.AvailabilityQueries
}

func NewAvailabilityHandler(
	availabilityCommands commands.AvailabilityCommands,
	availabilityQueries queries.AvailabilityQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: availabilityCommands,
		availabilityQueries:  availabilityQueries,
	}
}

// @Summary List blocked dates
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.AvailabilityBlockView
// @Router /admin/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	views, err := h.availabilityQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Block a date
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAvailabilityBlockRequest true "Block"
// @Success 201 {object} queries.AvailabilityBlockView
// @Failure 409 {object} httperr.Response
// @Router /admin/availability [post]
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req reqdto.CreateAvailabilityBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.availabilityCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBlockDay):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		case errors.Is(err, commands.ErrBlockExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "This date is already blocked", nil)
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown product", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Unblock a date
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Block id"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/availability/{id} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid block id", nil)
		return
	}

	if err := h.availabilityCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrBlockNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Block not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
