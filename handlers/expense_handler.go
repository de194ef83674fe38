package handlers

import (
	"net/http"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/middleware"
	"github.com/TravelPlannerHQ/travel-planner-gateway/services"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves the aggregated expense view and proxies expense
// mutations.
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// GetExpenses handles GET /v1/expenses?category=. The response carries the
// filtered list together with totals, the per-category breakdown and the
// percentage shares, all in one payload.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	filter := c.DefaultQuery("category", "All")

	summary, err := h.expenseService.Summarize(c.Request.Context(), userID, filter)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(summary))
}

// CreateExpense handles POST /v1/expenses.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req types.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid expense payload", err.Error()))
		c.Abort()
		return
	}

	userID := middleware.GetUserID(c)
	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, req)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, types.OK(expense))
}

// DeleteExpense handles DELETE /v1/expenses/:id.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID := c.Param("id")
	if expenseID == "" {
		_ = c.Error(apperrors.ValidationFailed("Missing expense ID", "path parameter id is required"))
		c.Abort()
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, expenseID); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, types.OK(nil))
}
