package derive

import (
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// recentLimit is how many items the dashboard previews per section.
const recentLimit = 3

// ClassifyTrips decorates each trip with its status at the reference instant.
func ClassifyTrips(trips []types.Trip, now time.Time) []types.TripView {
	views := make([]types.TripView, len(trips))
	for i, trip := range trips {
		views[i] = types.TripView{
			Trip:   trip,
			Status: StatusAt(trip.StartDate, now),
		}
	}
	return views
}

// SummarizeDashboard combines the trip and expense collections into the
// dashboard payload. Either collection may be nil or empty; the corresponding
// half of the summary simply stays zeroed, which is how partial upstream
// failures degrade.
//
// RecentTrips and RecentExpenses are the first 3 items in received order. The
// booking API returns collections newest-first, so no sort is applied here;
// if that ordering assumption ever breaks, the "recent" slices break with it.
// RecentBookings deliberately mirrors the expense count (see types.DashboardStats).
func SummarizeDashboard(trips []types.Trip, expenses []types.Expense, now time.Time) types.DashboardSummary {
	upcoming := 0
	for _, trip := range trips {
		if StatusAt(trip.StartDate, now) == types.TripStatusUpcoming {
			upcoming++
		}
	}

	var totalExpenses float64
	for _, e := range expenses {
		totalExpenses += e.Amount
	}

	return types.DashboardSummary{
		Stats: types.DashboardStats{
			TotalTrips:     len(trips),
			UpcomingTrips:  upcoming,
			TotalExpenses:  totalExpenses,
			RecentBookings: len(expenses),
		},
		RecentTrips:    ClassifyTrips(firstN(trips, recentLimit), now),
		RecentExpenses: firstN(expenses, recentLimit),
	}
}

// firstN returns the first n items of a slice without copying the backing
// array, tolerating short and nil inputs. The result is never nil so the
// JSON encoding is always an array.
func firstN[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
