package services

import (
	"context"
	"fmt"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/pkg/derive"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// ExpenseService serves the aggregated expense view and proxies expense
// mutations to the booking API.
type ExpenseService struct {
	api   upstream.ExpenseAPI
	cache *SnapshotCache
}

func NewExpenseService(api upstream.ExpenseAPI, cache *SnapshotCache) *ExpenseService {
	return &ExpenseService{api: api, cache: cache}
}

// Summarize fetches the user's expenses and aggregates them under the given
// category filter. An empty filter means "All". The filter only restricts the
// list and its totals; the category breakdown always covers everything.
func (s *ExpenseService) Summarize(ctx context.Context, userID, filter string) (types.ExpenseSummary, error) {
	if filter != "" && filter != derive.FilterAll && !types.ExpenseCategory(filter).IsValid() {
		return types.ExpenseSummary{}, apperrors.ValidationFailed(
			"Unknown expense category",
			fmt.Sprintf("category %q is not one of the fixed categories", filter))
	}

	expenses, err := s.cache.Expenses(ctx, userID, s.api.GetExpenses)
	if err != nil {
		return types.ExpenseSummary{}, apperrors.UpstreamFailed(err)
	}
	return derive.SummarizeExpenses(expenses, filter), nil
}

// CreateExpense validates the category and forwards the expense to the
// booking API for the given user.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID string, req types.CreateExpenseRequest) (*types.Expense, error) {
	if !types.ExpenseCategory(req.Category).IsValid() {
		return nil, apperrors.ValidationFailed(
			"Unknown expense category",
			fmt.Sprintf("category %q is not one of the fixed categories", req.Category))
	}
	req.UserID = userID

	expense, err := s.api.CreateExpense(ctx, req)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	s.cache.Invalidate(ctx, userID)
	return expense, nil
}

// DeleteExpense removes an expense via the booking API.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if err := s.api.DeleteExpense(ctx, expenseID); err != nil {
		return apperrors.UpstreamFailed(err)
	}
	s.cache.Invalidate(ctx, userID)
	return nil
}
