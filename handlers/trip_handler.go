package handlers

import (
	"net/http"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/middleware"
	"github.com/TravelPlannerHQ/travel-planner-gateway/services"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/gin-gonic/gin"
)

// TripHandler serves the trip list and proxies trip mutations.
type TripHandler struct {
	tripService *services.TripService
}

func NewTripHandler(tripService *services.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// ListTrips handles GET /v1/trips.
func (h *TripHandler) ListTrips(c *gin.Context) {
	userID := middleware.GetUserID(c)

	trips, err := h.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(trips))
}

// CreateTrip handles POST /v1/trips.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req types.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid trip payload", err.Error()))
		c.Abort()
		return
	}

	userID := middleware.GetUserID(c)
	trip, err := h.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, types.OK(trip))
}

// DeleteTrip handles DELETE /v1/trips/:id.
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		_ = c.Error(apperrors.ValidationFailed("Missing trip ID", "path parameter id is required"))
		c.Abort()
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(nil))
}
