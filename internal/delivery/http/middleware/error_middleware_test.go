package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"candidate-management-api/internal/delivery/http/middleware"
	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/apperror"
	"candidate-management-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupErrorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		c.Error(err)
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("Should map an AppError to its status code", func(t *testing.T) {
		router := setupErrorRouter(apperror.NotFound("Candidate not found."))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Candidate not found.")
	})

	t.Run("Should map the repository not-found sentinel to 404", func(t *testing.T) {
		router := setupErrorRouter(fmt.Errorf("update candidate: %w", domain.ErrNotFound))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Resource not found.")
	})

	t.Run("Should hide unexpected errors behind a generic 500", func(t *testing.T) {
		router := setupErrorRouter(errors.New("connection refused"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
