package services

import (
	"context"
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/logger"
	"github.com/TravelPlannerHQ/travel-planner-gateway/pkg/derive"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// DashboardAPI is the slice of the booking API the dashboard needs.
type DashboardAPI interface {
	upstream.TripAPI
	upstream.ExpenseAPI
}

// DashboardService builds the dashboard summary from the trip and expense
// collections. Each collection is fetched independently and a failed fetch
// degrades to an empty collection rather than failing the whole dashboard, so
// the summary always renders with whatever halves are available.
type DashboardService struct {
	api   DashboardAPI
	cache *SnapshotCache
	now   func() time.Time
}

func NewDashboardService(api DashboardAPI, cache *SnapshotCache) *DashboardService {
	return &DashboardService{api: api, cache: cache, now: time.Now}
}

// GetSummary returns the dashboard payload for the user. It never returns an
// error: upstream failures zero out the affected half of the summary.
func (s *DashboardService) GetSummary(ctx context.Context, userID string) types.DashboardSummary {
	log := logger.GetLogger()

	trips, err := s.cache.Trips(ctx, userID, s.api.GetTrips)
	if err != nil {
		log.Warnw("Dashboard trip fetch failed, rendering without trips",
			"error", err, "userId", userID)
		trips = nil
	}

	expenses, err := s.cache.Expenses(ctx, userID, s.api.GetExpenses)
	if err != nil {
		log.Warnw("Dashboard expense fetch failed, rendering without expenses",
			"error", err, "userId", userID)
		expenses = nil
	}

	return derive.SummarizeDashboard(trips, expenses, s.now())
}
