package api

import (
	"net/http"

	"github.com/Domenick1991/flighttracker/internal/service/preferences"
	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	service preferences.PreferenceUseCase
}

type darkModeRequest struct {
	DarkMode *bool `json:"dark_mode"`
}

type darkModeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

func NewPreferenceHandler(service preferences.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

func (h *PreferenceHandler) Register(router *gin.RouterGroup) {
	router.GET("/dark-mode", h.get)
	router.PUT("/dark-mode", h.set)
	router.POST("/dark-mode/toggle", h.toggle)
}

func (h *PreferenceHandler) get(c *gin.Context) {
	enabled, err := h.service.DarkMode(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, darkModeResponse{DarkMode: enabled})
}

func (h *PreferenceHandler) set(c *gin.Context) {
	var req darkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DarkMode == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dark_mode is required"})
		return
	}

	enabled, err := h.service.SetDarkMode(c.Request.Context(), *req.DarkMode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, darkModeResponse{DarkMode: enabled})
}

func (h *PreferenceHandler) toggle(c *gin.Context) {
	enabled, err := h.service.ToggleDarkMode(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, darkModeResponse{DarkMode: enabled})
}
