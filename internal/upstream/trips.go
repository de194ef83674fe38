package upstream

import (
	"context"
	"fmt"

	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// TripAPI covers the trip endpoints of the booking API.
type TripAPI interface {
	GetTrips(ctx context.Context, userID string) ([]types.Trip, error)
	CreateTrip(ctx context.Context, req types.CreateTripRequest) (*types.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

// ExpenseAPI covers the expense endpoints of the booking API.
type ExpenseAPI interface {
	GetExpenses(ctx context.Context, userID string) ([]types.Expense, error)
	CreateExpense(ctx context.Context, req types.CreateExpenseRequest) (*types.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

func (c *Client) GetTrips(ctx context.Context, userID string) ([]types.Trip, error) {
	trips := []types.Trip{}
	if err := c.get(ctx, fmt.Sprintf("/api/trips/user/%s", userID), &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *Client) CreateTrip(ctx context.Context, req types.CreateTripRequest) (*types.Trip, error) {
	var trip types.Trip
	if err := c.post(ctx, "/api/trips", req, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (c *Client) DeleteTrip(ctx context.Context, tripID string) error {
	return c.del(ctx, fmt.Sprintf("/api/trips/%s", tripID))
}

func (c *Client) GetExpenses(ctx context.Context, userID string) ([]types.Expense, error) {
	expenses := []types.Expense{}
	if err := c.get(ctx, fmt.Sprintf("/api/expenses/user/%s", userID), &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *Client) CreateExpense(ctx context.Context, req types.CreateExpenseRequest) (*types.Expense, error) {
	var expense types.Expense
	if err := c.post(ctx, "/api/expenses", req, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) DeleteExpense(ctx context.Context, expenseID string) error {
	return c.del(ctx, fmt.Sprintf("/api/expenses/%s", expenseID))
}
