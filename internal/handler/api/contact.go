package api

import (
	"errors"
	"net/http"

	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/handler/httperr"
	"flashbooth/internal/pkg/validate"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContactHandler struct {
	contactCommands commands.ContactCommands
	contactQueries  queries.ContactQueries
}

func NewContactHandler(contactCommands commands.ContactCommands, contactQueries queries.ContactQueries) *ContactHandler {
	return &ContactHandler{
		contactCommands: contactCommands,
		contactQueries:  contactQueries,
	}
}

// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContactMessageRequest true "Message"
// @Success 201 {object} queries.ContactMessageView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.contactCommands.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSuspiciousSender):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please use a regular personal or business email address", nil)
		case errors.Is(err, validate.ErrPhoneFormat), errors.Is(err, validate.ErrPhonePrefix):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please enter a valid French phone number", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List contact messages
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} queries.ContactMessageView
// @Router /admin/messages [get]
func (h *ContactHandler) List(c *gin.Context) {
	views, err := h.contactQueries.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get one message
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message id"
// @Success 200 {object} queries.ContactMessageView
// @Failure 404 {object} httperr.Response
// @Router /admin/messages/{id} [get]
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid message id", nil)
		return
	}

	view, err := h.contactQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrMessageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Message not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update message status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Message id"
// @Param request body reqdto.UpdateContactStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/messages/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid message id", nil)
		return
	}

	var req reqdto.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.contactCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, commands.ErrMessageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Message not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a message
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Message id"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/messages/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid message id", nil)
		return
	}

	if err := h.contactCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrMessageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Message not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
