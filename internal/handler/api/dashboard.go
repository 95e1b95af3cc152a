package api

import (
	"net/http"

	"flashbooth/internal/handler/httperr"
	"flashbooth/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

// @Summary Back-office dashboard stats
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.DashboardStats
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardQueries.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, stats)
}
