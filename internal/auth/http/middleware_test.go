package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/tracktainment/duxmanager/internal/auth/domain"
	"github.com/tracktainment/duxmanager/internal/httputil"
)

type mockTokenVerifier struct {
	mock.Mock
}

func (m *mockTokenVerifier) Verify(rawToken string) (*authDomain.Caller, error) {
	args := m.Called(rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Caller), args.Error(1)
}

func newAuthRouter(verifier *mockTokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(AuthenticationMiddleware(verifier, logger))
	router.GET("/protected", func(c *gin.Context) {
		caller, ok := authDomain.GetCaller(c.Request.Context())
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": caller.Subject})
	})
	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("Success_ValidToken", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		verifier.On("Verify", "good-token").Return(&authDomain.Caller{Subject: "user-1"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		newAuthRouter(verifier).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"subject":"user-1"}`, w.Body.String())
		verifier.AssertExpectations(t)
	})

	t.Run("Success_CaseInsensitivePrefix", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		verifier.On("Verify", "good-token").Return(&authDomain.Caller{Subject: "user-1"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bEaReR good-token")
		w := httptest.NewRecorder()
		newAuthRouter(verifier).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"Error_MissingHeader", ""},
		{"Error_WrongScheme", "Basic dXNlcjpwYXNz"},
		{"Error_EmptyToken", "Bearer    "},
		{"Error_TooShort", "Bear"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mockTokenVerifier{}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(verifier).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			verifier.AssertNotCalled(t, "Verify", mock.Anything)
		})
	}

	t.Run("Error_VerifierRejects", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		verifier.On("Verify", "bad-token").Return(nil, authDomain.ErrInvalidToken).Once()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		newAuthRouter(verifier).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unauthorized", body.Error)
		verifier.AssertExpectations(t)
	})
}
