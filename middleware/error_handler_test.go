package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter(fail func(c *gin.Context)) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", fail)
	return r
}

func TestErrorHandler_AppError(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("Trip", "trip-1"))
		c.Abort()
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"NOT_FOUND"`)
	assert.Contains(t, w.Body.String(), "Trip not found")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestErrorHandler_UpstreamError(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.UpstreamFailed(errors.New("connection refused")))
		c.Abort()
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"UPSTREAM_ERROR"`)
	// The raw upstream error never reaches the client.
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestErrorHandler_UnknownError(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("something unexpected"))
		c.Abort()
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"SERVER_ERROR"`)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestErrorHandler_RateLimitError(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.RateLimitExceeded("Too many requests", 60))
		c.Abort()
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"RATE_LIMIT_EXCEEDED"`)
}

func TestErrorHandler_NoError(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
