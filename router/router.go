// Package router wires the gin engine: middleware chain, health and metrics
// endpoints, and the versioned API surface.
package router

import (
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/config"
	"github.com/TravelPlannerHQ/travel-planner-gateway/handlers"
	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// Dependencies contains everything the router needs to set up routes.
type Dependencies struct {
	Config           *config.Config
	RedisClient      *redis.Client
	DashboardHandler *handlers.DashboardHandler
	TripHandler      *handlers.TripHandler
	ExpenseHandler   *handlers.ExpenseHandler
	StayHandler      *handlers.StayHandler
	TransportHandler *handlers.TransportHandler
	HealthHandler    *handlers.HealthHandler
}

// New builds the gin engine with the full middleware chain and route table.
func New(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", deps.HealthHandler.Health)
	r.GET("/health/liveness", deps.HealthHandler.Liveness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rateLimit := middleware.RateLimiter(
		deps.RedisClient,
		deps.Config.RateLimit.RequestsPerMinute,
		time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
	)

	v1 := r.Group("/v1")
	v1.Use(middleware.AuthMiddleware(&deps.Config.Server))
	{
		v1.GET("/dashboard", deps.DashboardHandler.GetDashboard)

		v1.GET("/trips", deps.TripHandler.ListTrips)
		v1.POST("/trips", deps.TripHandler.CreateTrip)
		v1.DELETE("/trips/:id", deps.TripHandler.DeleteTrip)

		v1.GET("/expenses", deps.ExpenseHandler.GetExpenses)
		v1.POST("/expenses", deps.ExpenseHandler.CreateExpense)
		v1.DELETE("/expenses/:id", deps.ExpenseHandler.DeleteExpense)

		// Search and booking hit the upstream inventory, so they carry the
		// rate limiter; read-only derived views do not.
		stays := v1.Group("/stays")
		{
			stays.POST("/search", rateLimit, deps.StayHandler.SearchStays)
			stays.GET("/bookings", deps.StayHandler.ListStayBookings)
			stays.POST("/bookings", rateLimit, deps.StayHandler.BookStay)
		}

		flights := v1.Group("/flights")
		{
			flights.POST("/search", rateLimit, deps.TransportHandler.SearchFlights)
			flights.GET("/bookings", deps.TransportHandler.ListBookings(upstream.ModeFlight))
			flights.POST("/bookings", rateLimit, deps.TransportHandler.Book(upstream.ModeFlight))
		}

		trains := v1.Group("/trains")
		{
			trains.POST("/search", rateLimit, deps.TransportHandler.SearchTrains)
			trains.GET("/bookings", deps.TransportHandler.ListBookings(upstream.ModeTrain))
			trains.POST("/bookings", rateLimit, deps.TransportHandler.Book(upstream.ModeTrain))
		}

		buses := v1.Group("/buses")
		{
			buses.POST("/search", rateLimit, deps.TransportHandler.SearchBuses)
			buses.GET("/bookings", deps.TransportHandler.ListBookings(upstream.ModeBus))
			buses.POST("/bookings", rateLimit, deps.TransportHandler.Book(upstream.ModeBus))
		}
	}

	return r
}
