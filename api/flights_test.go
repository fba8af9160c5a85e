package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/lookup"
	"github.com/Domenick1991/flighttracker/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, identifier, date string) (*domain.FlightDisplayModel, error) {
	args := m.Called(ctx, identifier, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDisplayModel), args.Error(1)
}

func sampleCard() *domain.FlightDisplayModel {
	return &domain.FlightDisplayModel{
		FlightNumber: "BA117",
		Airline:      "British Airways",
		Status:       domain.FlightStatusBoarding,
		Departure:    domain.AirportView{Code: "LHR", Name: "London Heathrow", City: "London", Time: "10:05", Gate: "Gate C3", Terminal: "Terminal C"},
		Arrival:      domain.AirportView{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Time: "14:05", Gate: "Gate A9", Terminal: "Terminal A"},
		Aircraft:     "Boeing 777-300ER",
		Duration:     "6h 53m",
		Baggage:      "Carousel 4",
	}
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?identifier=ba+117&date=2024-01-01", nil)

	mockService.On("Search", c.Request.Context(), "ba 117", "2024-01-01").Return(sampleCard(), nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body domain.FlightDisplayModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, *sampleCard(), body)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_searchCard(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search/card?identifier=BA117", nil)

	mockService.On("Search", c.Request.Context(), "BA117", "").Return(sampleCard(), nil)

	handler.searchCard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "BA117  [boarding]")
	assert.Contains(t, w.Body.String(), "Baggage Claim  Carousel 4")

	mockService.AssertExpectations(t)
}

func TestFlightHandler_searchErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"empty", flights.ErrEmptyIdentifier, http.StatusBadRequest, "flight number is required"},
		{"bad date", flights.ErrInvalidDate, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD"},
		{"not found", &lookup.NotFoundError{Identifier: "INVALID123"}, http.StatusNotFound, "Flight INVALID123 not found. Try flights like AA1234, UA2345, DL1234, etc."},
		{"upstream", &lookup.UpstreamError{StatusCode: 500}, http.StatusBadGateway, "API error: 500"},
		{"connectivity", &lookup.ConnectivityError{Err: errors.New("refused")}, http.StatusServiceUnavailable, "Unable to connect to flight database. Please check your connection."},
		{"other", errors.New("boom"), http.StatusInternalServerError, "boom"},
	}

	gin.SetMode(gin.TestMode)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockFlightUseCase{}
			handler := NewFlightHandler(mockService)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/flights/search?identifier=INVALID123", nil)
			mockService.On("Search", c.Request.Context(), "INVALID123", "").Return(nil, tc.err)

			handler.search(c)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.msg, body["error"])
		})
	}
}
