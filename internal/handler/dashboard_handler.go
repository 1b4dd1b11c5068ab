package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-task-api/internal/response"
	"project-task-api/internal/service"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary godoc
// @Summary      Dashboard summary
// @Description  Aggregates the requester's task counts by status and priority,
// @Description  overdue count and visible project count. Served from cache
// @Description  when fresh.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.DashboardSummaryResponse}
// @Failure      401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summary)
}
