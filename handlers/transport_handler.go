package handlers

import (
	"net/http"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/middleware"
	"github.com/TravelPlannerHQ/travel-planner-gateway/services"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/gin-gonic/gin"
)

// TransportHandler serves flight, train and bus search and bookings. The
// three endpoint families share handlers parameterized by transport mode.
type TransportHandler struct {
	transportService *services.TransportService
}

func NewTransportHandler(transportService *services.TransportService) *TransportHandler {
	return &TransportHandler{transportService: transportService}
}

// SearchFlights handles POST /v1/flights/search.
func (h *TransportHandler) SearchFlights(c *gin.Context) {
	search, ok := bindTransportSearch(c)
	if !ok {
		return
	}
	flights, err := h.transportService.SearchFlights(c.Request.Context(), search)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(flights))
}

// SearchTrains handles POST /v1/trains/search.
func (h *TransportHandler) SearchTrains(c *gin.Context) {
	search, ok := bindTransportSearch(c)
	if !ok {
		return
	}
	trains, err := h.transportService.SearchTrains(c.Request.Context(), search)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(trains))
}

// SearchBuses handles POST /v1/buses/search.
func (h *TransportHandler) SearchBuses(c *gin.Context) {
	search, ok := bindTransportSearch(c)
	if !ok {
		return
	}
	buses, err := h.transportService.SearchBuses(c.Request.Context(), search)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(buses))
}

// Book returns a handler for POST /v1/{flights,trains,buses}/bookings.
func (h *TransportHandler) Book(mode upstream.TransportMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.BookTransportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apperrors.ValidationFailed("Invalid booking payload", err.Error()))
			c.Abort()
			return
		}

		userID := middleware.GetUserID(c)
		booking, err := h.transportService.Book(c.Request.Context(), mode, userID, req)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.JSON(http.StatusCreated, types.OK(booking))
	}
}

// ListBookings returns a handler for GET /v1/{flights,trains,buses}/bookings.
func (h *TransportHandler) ListBookings(mode upstream.TransportMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		bookings, err := h.transportService.ListBookings(c.Request.Context(), mode, userID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.JSON(http.StatusOK, types.OK(bookings))
	}
}

func bindTransportSearch(c *gin.Context) (types.TransportSearch, bool) {
	var search types.TransportSearch
	if err := c.ShouldBindJSON(&search); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid transport search", err.Error()))
		c.Abort()
		return search, false
	}
	return search, true
}
