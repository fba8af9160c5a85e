package api

import (
	"net/http"

	"github.com/Domenick1991/flighttracker/internal/service/flights"
	"github.com/Domenick1991/flighttracker/internal/service/preferences"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every handler under /api/v1.
func NewRouter(flightSvc flights.FlightUseCase, prefSvc preferences.PreferenceUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	NewFlightHandler(flightSvc).Register(v1.Group("/flights"))
	NewPreferenceHandler(prefSvc).Register(v1.Group("/preferences"))

	return router
}
