package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func newMetricsRouter(t *testing.T) (*gin.Engine, *Provider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))
	return router, provider
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Run("Success_LabelsUseRoutePattern", func(t *testing.T) {
		router, provider := newMetricsRouter(t)
		router.GET("/api/v1/assets/digitalUsers/:digitalUserId/:externalId", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"externalId": c.Param("externalId")})
		})

		for _, id := range []string{"3f1c5a52", "9b7e2d10"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assets/digitalUsers/user-1/"+id, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		body := scrape(t, provider)
		assert.Contains(t, body, "test_app_http_requests_total")
		assert.Contains(t, body, `path="/api/v1/assets/digitalUsers/:digitalUserId/:externalId"`)
		assert.Contains(t, body, `resource="assets"`)
		assert.NotContains(t, body, "3f1c5a52")
		assert.NotContains(t, body, "user-1")
	})

	t.Run("Success_RecordsStatusCodes", func(t *testing.T) {
		router, provider := newMetricsRouter(t)
		router.POST("/api/v1/digitalUsers", func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		router.DELETE("/api/v1/digitalUsers/:id", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/digitalUsers", nil))
		assert.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/digitalUsers/abc", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		body := scrape(t, provider)
		assert.Contains(t, body, `status_code="201"`)
		assert.Contains(t, body, `status_code="404"`)
		assert.Contains(t, body, `resource="digital_users"`)
		assert.Contains(t, body, "test_app_http_request_duration_seconds")
		assert.Contains(t, body, "test_app_http_requests_in_flight")
	})

	t.Run("Success_UnmatchedRoute", func(t *testing.T) {
		router, provider := newMetricsRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere/42", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		body := scrape(t, provider)
		assert.Contains(t, body, `path="unknown"`)
		assert.Contains(t, body, `resource="system"`)
		assert.NotContains(t, body, "/nowhere/42")
	})
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/api/v1/assets", sanitizePath("/api/v1/assets"))
	assert.Equal(t, "unknown", sanitizePath(""))
}

func TestResourceOf(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/api/v1/digitalUsers/:id", "digital_users"},
		{"/api/v1/digitalUsers", "digital_users"},
		{"/api/v1/assets/digitalUsers/:digitalUserId", "assets"},
		{"/api/v1/assets", "assets"},
		{"/health", "system"},
		{"unknown", "system"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, resourceOf(tt.path))
		})
	}
}
