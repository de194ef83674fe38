package derive

import (
	"math"
	"testing"

	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExpenses() []types.Expense {
	return []types.Expense{
		{ExpenseID: "e1", Description: "Lunch", Amount: 30, Category: "Food", Date: "2024-03-01"},
		{ExpenseID: "e2", Description: "Dinner", Amount: 20, Category: "Food", Date: "2024-03-02"},
		{ExpenseID: "e3", Description: "Free souvenir", Amount: 0, Category: "Shopping", Date: "2024-03-03"},
	}
}

func TestSummarizeExpenses_FilterAll(t *testing.T) {
	summary := SummarizeExpenses(sampleExpenses(), FilterAll)

	assert.Equal(t, 50.0, summary.Total)
	assert.Equal(t, 3, summary.Count)
	// The zero-amount item still counts toward the average denominator.
	assert.InDelta(t, 16.67, summary.Average, 0.005)
	assert.Len(t, summary.Filtered, 3)

	assert.Equal(t, 30.0+20.0, summary.ByCategory["Food"])
	assert.Equal(t, 0.0, summary.ByCategory["Shopping"])
	assert.Equal(t, 0.0, summary.ByCategory["Transportation"])
}

func TestSummarizeExpenses_CategoryFilter(t *testing.T) {
	summary := SummarizeExpenses(sampleExpenses(), "Food")

	assert.Equal(t, 30.0+20.0, summary.Total)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 25.0, summary.Average)
	assert.Len(t, summary.Filtered, 2)

	// Breakdown is computed over the unfiltered collection regardless of the
	// active filter.
	assert.Equal(t, 50.0, summary.ByCategory["Food"])
	assert.Equal(t, 100.0, summary.Percentages["Food"])
}

func TestSummarizeExpenses_Empty(t *testing.T) {
	summary := SummarizeExpenses(nil, FilterAll)

	assert.Equal(t, 0.0, summary.Total)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.Average)
	assert.Empty(t, summary.Filtered)

	require.Len(t, summary.ByCategory, len(types.Categories))
	for _, c := range types.Categories {
		assert.Equal(t, 0.0, summary.ByCategory[c.String()])
		assert.Equal(t, 0.0, summary.Percentages[c.String()])
	}
}

func TestSummarizeExpenses_UnknownCategory(t *testing.T) {
	expenses := append(sampleExpenses(), types.Expense{
		ExpenseID: "e4", Description: "Visa fee", Amount: 80, Category: "Paperwork",
	})

	summary := SummarizeExpenses(expenses, FilterAll)

	// Unknown category counts toward total and average but not the breakdown.
	assert.Equal(t, 130.0, summary.Total)
	assert.Equal(t, 4, summary.Count)
	_, present := summary.ByCategory["Paperwork"]
	assert.False(t, present)

	var breakdownSum float64
	for _, v := range summary.ByCategory {
		breakdownSum += v
	}
	assert.Less(t, breakdownSum, summary.Total)
}

func TestSummarizeExpenses_BreakdownCoversTotal(t *testing.T) {
	// With only fixed categories present the breakdown accounts for every cent.
	summary := SummarizeExpenses(sampleExpenses(), FilterAll)

	var breakdownSum float64
	for _, v := range summary.ByCategory {
		breakdownSum += v
	}
	assert.Equal(t, summary.Total, breakdownSum)
}

func TestSummarizeExpenses_Idempotent(t *testing.T) {
	expenses := sampleExpenses()

	first := SummarizeExpenses(expenses, "Food")
	second := SummarizeExpenses(expenses, "Food")

	assert.Equal(t, first, second)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     float64
		whole    float64
		expected float64
	}{
		{"half", 25, 50, 50},
		{"full", 50, 50, 100},
		{"zero whole yields zero", 25, 0, 0},
		{"zero part", 0, 50, 0},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(tt.part, tt.whole)
			assert.Equal(t, tt.expected, got)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
		})
	}
}

func TestFilterExpenses_DoesNotMutateInput(t *testing.T) {
	expenses := sampleExpenses()
	FilterExpenses(expenses, "Food")

	assert.Equal(t, sampleExpenses(), expenses)
}
