package derive

import "github.com/TravelPlannerHQ/travel-planner-gateway/types"

// FilterAll selects the whole collection instead of a single category.
const FilterAll = "All"

// FilterExpenses returns the expenses whose category equals the filter, or
// the full collection when the filter is FilterAll. The input slice is never
// mutated.
func FilterExpenses(expenses []types.Expense, filter string) []types.Expense {
	if filter == "" || filter == FilterAll {
		return expenses
	}
	filtered := make([]types.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Category == filter {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// SummarizeExpenses aggregates an expense collection for the expense view.
//
// Total, Count and Average are computed over the filtered subset. ByCategory
// and Percentages are always computed over the unfiltered collection so the
// category breakdown stays stable while the user flips filters. Every fixed
// category appears in ByCategory, zero-valued when unmatched; expenses with a
// category outside the fixed set drop out of the breakdown but still count
// toward the All-filter total and average. Percentages are sized against the
// unfiltered total and are 0 when that total is 0, never NaN or Inf.
func SummarizeExpenses(expenses []types.Expense, filter string) types.ExpenseSummary {
	filtered := FilterExpenses(expenses, filter)

	var total float64
	for _, e := range filtered {
		total += e.Amount
	}

	average := 0.0
	if len(filtered) > 0 {
		average = total / float64(len(filtered))
	}

	var grandTotal float64
	for _, e := range expenses {
		grandTotal += e.Amount
	}

	byCategory := make(map[string]float64, len(types.Categories))
	for _, c := range types.Categories {
		byCategory[c.String()] = 0
	}
	for _, e := range expenses {
		if types.ExpenseCategory(e.Category).IsValid() {
			byCategory[e.Category] += e.Amount
		}
	}

	percentages := make(map[string]float64, len(types.Categories))
	for _, c := range types.Categories {
		percentages[c.String()] = Percentage(byCategory[c.String()], grandTotal)
	}

	return types.ExpenseSummary{
		Filtered:    filtered,
		Total:       total,
		Count:       len(filtered),
		Average:     average,
		ByCategory:  byCategory,
		Percentages: percentages,
	}
}

// Percentage returns part/whole × 100, or 0 when the whole is 0. Used to size
// proportional category bars, which must never receive NaN or Inf widths.
func Percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
