package handlers

import (
	"net/http"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/middleware"
	"github.com/TravelPlannerHQ/travel-planner-gateway/services"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/gin-gonic/gin"
)

// StayHandler serves hotel search with derived quotes plus hotel bookings.
type StayHandler struct {
	stayService *services.StayService
}

func NewStayHandler(stayService *services.StayService) *StayHandler {
	return &StayHandler{stayService: stayService}
}

// SearchStays handles POST /v1/stays/search. Every hotel in the result comes
// with a quote for the requested dates and room count.
func (h *StayHandler) SearchStays(c *gin.Context) {
	var search types.StaySearch
	if err := c.ShouldBindJSON(&search); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid stay search", err.Error()))
		c.Abort()
		return
	}

	offers, err := h.stayService.Search(c.Request.Context(), search)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(offers))
}

// BookStay handles POST /v1/stays/bookings.
func (h *StayHandler) BookStay(c *gin.Context) {
	var req types.BookHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid booking payload", err.Error()))
		c.Abort()
		return
	}

	userID := middleware.GetUserID(c)
	booking, err := h.stayService.Book(c.Request.Context(), userID, req)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, types.OK(booking))
}

// ListStayBookings handles GET /v1/stays/bookings.
func (h *StayHandler) ListStayBookings(c *gin.Context) {
	userID := middleware.GetUserID(c)

	bookings, err := h.stayService.ListBookings(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(bookings))
}
