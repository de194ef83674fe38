package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/logger"
	"github.com/TravelPlannerHQ/travel-planner-gateway/middleware"
	"github.com/TravelPlannerHQ/travel-planner-gateway/services"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
}

// newUpstreamStub serves canned booking API envelopes keyed by path.
func newUpstreamStub(t *testing.T, responses map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(types.Response{Success: false, Message: "not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(types.OK(data))
	}))
}

// newTestRouter wires real services against the stub upstream and injects a
// fixed authenticated user, skipping JWT validation.
func newTestRouter(upstreamURL string) *gin.Engine {
	client := upstream.NewClient(upstreamURL, 2*time.Second)

	dashboardHandler := NewDashboardHandler(services.NewDashboardService(client, nil))
	tripHandler := NewTripHandler(services.NewTripService(client, nil))
	expenseHandler := NewExpenseHandler(services.NewExpenseService(client, nil))
	stayHandler := NewStayHandler(services.NewStayService(client))
	transportHandler := NewTransportHandler(services.NewTransportService(client))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "user-1")
		c.Next()
	})

	v1 := r.Group("/v1")
	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/trips", tripHandler.ListTrips)
	v1.POST("/trips", tripHandler.CreateTrip)
	v1.DELETE("/trips/:id", tripHandler.DeleteTrip)
	v1.GET("/expenses", expenseHandler.GetExpenses)
	v1.POST("/expenses", expenseHandler.CreateExpense)
	v1.POST("/stays/search", stayHandler.SearchStays)
	v1.POST("/stays/bookings", stayHandler.BookStay)
	v1.GET("/stays/bookings", stayHandler.ListStayBookings)
	v1.POST("/flights/search", transportHandler.SearchFlights)
	v1.POST("/flights/bookings", transportHandler.Book(upstream.ModeFlight))
	v1.GET("/flights/bookings", transportHandler.ListBookings(upstream.ModeFlight))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetDashboard(t *testing.T) {
	stub := newUpstreamStub(t, map[string]interface{}{
		"/api/trips/user/user-1": []types.Trip{
			{TripID: "t1", Destination: "Lisbon", StartDate: "2999-01-01"},
			{TripID: "t2", Destination: "Kyoto", StartDate: "2020-01-01"},
		},
		"/api/expenses/user/user-1": []types.Expense{
			{ExpenseID: "e1", Amount: 30, Category: "Food"},
			{ExpenseID: "e2", Amount: 20, Category: "Shopping"},
		},
	})
	defer stub.Close()

	w := doJSON(t, newTestRouter(stub.URL), http.MethodGet, "/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    types.DashboardSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Data.Stats.TotalTrips)
	assert.Equal(t, 1, resp.Data.Stats.UpcomingTrips)
	assert.InDelta(t, 50.0, resp.Data.Stats.TotalExpenses, 1e-9)
	assert.Equal(t, 2, resp.Data.Stats.RecentBookings)
}

func TestGetDashboard_UpstreamDownStillRenders(t *testing.T) {
	stub := newUpstreamStub(t, nil)
	stub.Close() // connection refused for every fetch

	w := doJSON(t, newTestRouter(stub.URL), http.MethodGet, "/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data types.DashboardSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.DashboardStats{}, resp.Data.Stats)
	assert.NotNil(t, resp.Data.RecentTrips)
	assert.NotNil(t, resp.Data.RecentExpenses)
}

func TestListTrips_StatusAnnotated(t *testing.T) {
	stub := newUpstreamStub(t, map[string]interface{}{
		"/api/trips/user/user-1": []types.Trip{
			{TripID: "t1", StartDate: "2999-01-01"},
		},
	})
	defer stub.Close()

	w := doJSON(t, newTestRouter(stub.URL), http.MethodGet, "/v1/trips", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Upcoming"`)
}

func TestListTrips_UpstreamErrorIsBadGateway(t *testing.T) {
	stub := newUpstreamStub(t, nil)
	stub.Close()

	w := doJSON(t, newTestRouter(stub.URL), http.MethodGet, "/v1/trips", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"UPSTREAM_ERROR"`)
}

func TestGetExpenses_FilteredSummary(t *testing.T) {
	stub := newUpstreamStub(t, map[string]interface{}{
		"/api/expenses/user/user-1": []types.Expense{
			{ExpenseID: "e1", Amount: 30, Category: "Food"},
			{ExpenseID: "e2", Amount: 20, Category: "Shopping"},
		},
	})
	defer stub.Close()

	w := doJSON(t, newTestRouter(stub.URL), http.MethodGet, "/v1/expenses?category=Food", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data types.ExpenseSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Count)
	assert.InDelta(t, 30.0, resp.Data.Total, 1e-9)
	// Breakdown always covers the unfiltered collection.
	assert.InDelta(t, 20.0, resp.Data.ByCategory["Shopping"], 1e-9)
	assert.InDelta(t, 40.0, resp.Data.Percentages["Shopping"], 1e-9)
}

func TestGetExpenses_UnknownCategoryRejected(t *testing.T) {
	stub := newUpstreamStub(t, nil)
	defer stub.Close()

	w := doJSON(t, newTestRouter(stub.URL), http.MethodGet, "/v1/expenses?category=Gambling", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"VALIDATION_ERROR"`)
}

func TestCreateExpense_InvalidPayload(t *testing.T) {
	stub := newUpstreamStub(t, nil)
	defer stub.Close()

	w := doJSON(t, newTestRouter(stub.URL), http.MethodPost, "/v1/expenses", `{"description":"lunch"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchStays_QuotesAttached(t *testing.T) {
	stub := newUpstreamStub(t, map[string]interface{}{
		"/api/hotels/search": []types.Hotel{
			{HotelID: "h1", Name: "Harbor View", PricePerNight: 100},
		},
	})
	defer stub.Close()

	body := `{"location":"Lisbon","checkInDate":"2024-07-01","checkOutDate":"2024-07-04","rooms":2}`
	w := doJSON(t, newTestRouter(stub.URL), http.MethodPost, "/v1/stays/search", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []types.HotelOffer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 3, resp.Data[0].Quote.Nights)
	assert.InDelta(t, 600.0, resp.Data[0].Quote.TotalPrice, 1e-9)
}

func TestBookStay_TotalComputedServerSide(t *testing.T) {
	var received types.HotelBooking
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/hotels/bookings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		created := received
		created.BookingID = "booking-1"
		_ = json.NewEncoder(w).Encode(types.OK(created))
	}))
	defer stub.Close()

	body := `{"hotelId":"h1","pricePerNight":120,"checkInDate":"2024-07-01","checkOutDate":"2024-07-03","rooms":1,"guests":2}`
	w := doJSON(t, newTestRouter(stub.URL), http.MethodPost, "/v1/stays/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user-1", received.UserID)
	assert.InDelta(t, 240.0, received.TotalPrice, 1e-9)
}

func TestBookFlight_SeatTotal(t *testing.T) {
	var received types.TransportBooking
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/flights/bookings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		created := received
		created.BookingID = "booking-2"
		_ = json.NewEncoder(w).Encode(types.OK(created))
	}))
	defer stub.Close()

	body := `{"flightId":"f1","price":199.99,"passengers":3}`
	w := doJSON(t, newTestRouter(stub.URL), http.MethodPost, "/v1/flights/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.InDelta(t, 599.97, received.TotalPrice, 1e-9)
	assert.Equal(t, "user-1", received.UserID)
}

func TestBookFlight_MissingReference(t *testing.T) {
	stub := newUpstreamStub(t, nil)
	defer stub.Close()

	body := `{"trainId":"t1","price":50,"passengers":1}`
	w := doJSON(t, newTestRouter(stub.URL), http.MethodPost, "/v1/flights/bookings", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"VALIDATION_ERROR"`)
}
