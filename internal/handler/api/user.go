package api

import (
	"errors"
	"net/http"

	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/handler/httperr"
	"flashbooth/internal/handler/middleware"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary List staff accounts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.userQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create a staff account
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "Account"
// @Success 201 {object} queries.UserView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.userCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "An account with this email already exists", nil)
		case errors.Is(err, commands.ErrWeakPassword):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
				"Password must contain at least 8 characters with upper and lower case letters, a digit and a special character", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Enable or disable an account
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "User id"
// @Param request body reqdto.SetUserActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/active [patch]
func (h *UserHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}

	var req reqdto.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.userCommands.SetActive(c.Request.Context(), id, req.Active); err != nil {
		if errors.Is(err, commands.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update own profile
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.UpdateProfileRequest true "Profile patch"
// @Success 204 "No Content"
// @Failure 422 {object} httperr.Response
// @Router /auth/profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.userCommands.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrWeakPassword):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
				"Password must contain at least 8 characters with upper and lower case letters, a digit and a special character", nil)
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
