package handlers

import (
	"net/http"

	"github.com/TravelPlannerHQ/travel-planner-gateway/middleware"
	"github.com/TravelPlannerHQ/travel-planner-gateway/services"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles GET /v1/dashboard. It always answers 200: upstream
// failures degrade to zeroed halves inside the service, so the dashboard can
// render with whatever data is reachable.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	summary := h.dashboardService.GetSummary(c.Request.Context(), userID)
	c.JSON(http.StatusOK, types.OK(summary))
}
