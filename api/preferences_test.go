package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPreferenceUseCase struct {
	mock.Mock
}

func (m *MockPreferenceUseCase) DarkMode(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockPreferenceUseCase) SetDarkMode(ctx context.Context, enabled bool) (bool, error) {
	args := m.Called(ctx, enabled)
	return args.Bool(0), args.Error(1)
}

func (m *MockPreferenceUseCase) ToggleDarkMode(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func TestPreferenceHandler_get(t *testing.T) {
	mockService := &MockPreferenceUseCase{}
	handler := NewPreferenceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/preferences/dark-mode", nil)

	mockService.On("DarkMode", c.Request.Context()).Return(false, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dark_mode": false}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestPreferenceHandler_set(t *testing.T) {
	mockService := &MockPreferenceUseCase{}
	handler := NewPreferenceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PUT", "/preferences/dark-mode", strings.NewReader(`{"dark_mode": true}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("SetDarkMode", c.Request.Context(), true).Return(true, nil)

	handler.set(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dark_mode": true}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestPreferenceHandler_setRequiresValue(t *testing.T) {
	mockService := &MockPreferenceUseCase{}
	handler := NewPreferenceHandler(mockService)

	gin.SetMode(gin.TestMode)
	for _, body := range []string{`{}`, `not json`} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("PUT", "/preferences/dark-mode", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.set(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	mockService.AssertNotCalled(t, "SetDarkMode")
}

func TestPreferenceHandler_toggle(t *testing.T) {
	mockService := &MockPreferenceUseCase{}
	handler := NewPreferenceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/preferences/dark-mode/toggle", nil)

	mockService.On("ToggleDarkMode", c.Request.Context()).Return(true, nil)

	handler.toggle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dark_mode": true}`, w.Body.String())
}

func TestPreferenceHandler_toggleError(t *testing.T) {
	mockService := &MockPreferenceUseCase{}
	handler := NewPreferenceHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/preferences/dark-mode/toggle", nil)

	mockService.On("ToggleDarkMode", c.Request.Context()).Return(false, errors.New("write dark mode: read-only"))

	handler.toggle(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
