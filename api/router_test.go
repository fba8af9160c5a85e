package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	flightSvc := &MockFlightUseCase{}
	prefSvc := &MockPreferenceUseCase{}
	router := NewRouter(flightSvc, prefSvc)

	flightSvc.On("Search", mock.Anything, "UA567", "2024-01-01").Return(sampleCard(), nil)
	prefSvc.On("DarkMode", mock.Anything).Return(true, nil)

	cases := []struct {
		method, path string
		status       int
	}{
		{"GET", "/healthz", http.StatusOK},
		{"GET", "/api/v1/flights/search?identifier=UA567&date=2024-01-01", http.StatusOK},
		{"GET", "/api/v1/flights/search/card?identifier=UA567&date=2024-01-01", http.StatusOK},
		{"GET", "/api/v1/preferences/dark-mode", http.StatusOK},
		{"GET", "/api/v1/unknown", http.StatusNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.status, w.Code, tc.path)
	}
}
