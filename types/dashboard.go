package types

// DashboardStats holds the top-line counters shown on the dashboard. All
// values are derived from the trip and expense collections on every fetch
// cycle; nothing here is persisted.
//
// RecentBookings intentionally mirrors the expense count. The original
// product shipped with that behavior and downstream widgets depend on it, so
// the gateway preserves it rather than aggregating actual booking records.
type DashboardStats struct {
	TotalTrips     int     `json:"totalTrips"`
	UpcomingTrips  int     `json:"upcomingTrips"`
	TotalExpenses  float64 `json:"totalExpenses"`
	RecentBookings int     `json:"recentBookings"`
}

// DashboardSummary is the full dashboard payload: counters plus the recent
// slices. Recent slices are the first N items in the order the booking API
// returned them; no sort is applied, so chronological recency is only as good
// as the upstream response order.
type DashboardSummary struct {
	Stats          DashboardStats `json:"stats"`
	RecentTrips    []TripView     `json:"recentTrips"`
	RecentExpenses []Expense      `json:"recentExpenses"`
}

// ExpenseSummary is the aggregated expense payload for the expense view.
type ExpenseSummary struct {
	Filtered    []Expense          `json:"filtered"`
	Total       float64            `json:"total"`
	Count       int                `json:"count"`
	Average     float64            `json:"average"`
	ByCategory  map[string]float64 `json:"byCategory"`
	Percentages map[string]float64 `json:"percentages"`
}
