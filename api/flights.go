package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/flighttracker/internal/card"
	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/lookup"
	"github.com/Domenick1991/flighttracker/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
	router.GET("/search/card", h.searchCard)
}

func (h *FlightHandler) search(c *gin.Context) {
	model, ok := h.runSearch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, model)
}

func (h *FlightHandler) searchCard(c *gin.Context) {
	model, ok := h.runSearch(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, "%s", card.RenderString(model))
}

func (h *FlightHandler) runSearch(c *gin.Context) (*domain.FlightDisplayModel, bool) {
	identifier := c.Query("identifier")
	date := c.Query("date")

	model, err := h.service.Search(c.Request.Context(), identifier, date)
	if err != nil {
		status := searchErrorStatus(err)
		log.Printf("search %q failed with %d: %v", identifier, status, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	log.Printf("search %q -> %s %s-%s", identifier, model.FlightNumber, model.Departure.Code, model.Arrival.Code)
	return model, true
}

func searchErrorStatus(err error) int {
	var (
		notFound     *lookup.NotFoundError
		upstream     *lookup.UpstreamError
		connectivity *lookup.ConnectivityError
	)
	switch {
	case errors.Is(err, flights.ErrEmptyIdentifier), errors.Is(err, flights.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	case errors.As(err, &connectivity):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
