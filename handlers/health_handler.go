package handlers

import (
	"net/http"
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// HealthStatus represents the health state of a component
type HealthStatus string

const (
	StatusUp       HealthStatus = "up"
	StatusDown     HealthStatus = "down"
	StatusDegraded HealthStatus = "degraded"
)

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status     HealthStatus            `json:"status"`
	Version    string                  `json:"version,omitempty"`
	Uptime     string                  `json:"uptime,omitempty"`
	Components map[string]HealthStatus `json:"components,omitempty"`
}

// HealthHandler reports service liveness and readiness. Redis is an optional
// dependency (the snapshot cache fails open), so a Redis outage reports
// degraded, not down.
type HealthHandler struct {
	redisClient *redis.Client
	version     string
	startTime   time.Time
}

func NewHealthHandler(redisClient *redis.Client, version string) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
		version:     version,
		startTime:   time.Now(),
	}
}

// Liveness handles GET /health/liveness. It only proves the process serves
// requests, so load balancers never restart the gateway over a cache outage.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: StatusUp})
}

// Health handles GET /health with per-component detail.
func (h *HealthHandler) Health(c *gin.Context) {
	components := map[string]HealthStatus{
		"server": StatusUp,
	}
	overall := StatusUp

	if h.redisClient != nil {
		if err := h.redisClient.Ping(c.Request.Context()).Err(); err != nil {
			logger.GetLogger().Warnw("Health check: redis unreachable", "error", err)
			components["redis"] = StatusDown
			overall = StatusDegraded
		} else {
			components["redis"] = StatusUp
		}
	}

	status := http.StatusOK
	if overall == StatusDown {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
		Components: components,
	})
}
