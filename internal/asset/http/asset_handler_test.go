package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
	"github.com/tracktainment/duxmanager/internal/asset/http/dto"
	"github.com/tracktainment/duxmanager/internal/asset/usecase/mocks"
	authDomain "github.com/tracktainment/duxmanager/internal/auth/domain"
	"github.com/tracktainment/duxmanager/internal/httputil"
)

const (
	userID     = "0190f2a4-7b5e-7c1d-9a3e-5f6b7c8d9e0f"
	externalID = "123e4567-e89b-12d3-a456-426614174000"
)

func setupTestHandler(t *testing.T) (*AssetHandler, *mocks.MockAssetUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := mocks.NewMockAssetUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAssetHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func sampleAsset() *assetDomain.Asset {
	return &assetDomain.Asset{
		ID:               "0190f2a4-0000-7000-8000-000000000001",
		ExternalID:       externalID,
		Type:             "book",
		PermissionPolicy: assetDomain.PermissionOwner,
		ArtifactInformation: assetDomain.ArtifactInformation{
			GroupID:    "com.tracktainment",
			ArtifactID: "book-manager",
			Version:    "0.0.1-SNAPSHOT",
		},
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func validCreateRequest() dto.CreateAssetRequest {
	return dto.CreateAssetRequest{
		ExternalID:       externalID,
		Type:             "book",
		PermissionPolicy: "owner",
		ArtifactInformation: &dto.ArtifactInformationRequest{
			GroupID:    "com.tracktainment",
			ArtifactID: "book-manager",
			Version:    "0.0.1-SNAPSHOT",
		},
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var body httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAssetHandler_CreateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		req := validCreateRequest()
		in, err := req.ToDomain()
		require.NoError(t, err)
		mockUseCase.On("Create", mock.Anything, userID, in).Return(sampleAsset(), nil).Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/assets/digitalUsers/"+userID, validCreateRequest())
		c.Params = gin.Params{{Key: "digitalUserId", Value: userID}}

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.AssetResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, externalID, response.ExternalID)
		assert.Equal(t, "owner", response.PermissionPolicy)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/assets/digitalUsers/"+userID, nil)
		c.Params = gin.Params{{Key: "digitalUserId", Value: userID}}

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InvalidDigitalUserID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/assets/digitalUsers/nope", validCreateRequest())
		c.Params = gin.Params{{Key: "digitalUserId", Value: "nope"}}

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_ValidationFailed", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		req := validCreateRequest()
		req.PermissionPolicy = "admin"

		c, w := createTestContext(http.MethodPost, "/api/v1/assets/digitalUsers/"+userID, req)
		c.Params = gin.Params{{Key: "digitalUserId", Value: userID}}

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_error", decodeError(t, w).Error)
	})

	t.Run("Error_AlreadyExists", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Create", mock.Anything, userID, mock.Anything).
			Return(nil, assetDomain.ErrAssetAlreadyExists).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/assets/digitalUsers/"+userID, validCreateRequest())
		c.Params = gin.Params{{Key: "digitalUserId", Value: userID}}

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_CallerMismatch", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Create", mock.Anything, userID, mock.Anything).
			Return(nil, authDomain.ErrCallerMismatch).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/assets/digitalUsers/"+userID, validCreateRequest())
		c.Params = gin.Params{{Key: "digitalUserId", Value: userID}}

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAssetHandler_GetHandler(t *testing.T) {
	t.Run("Success_Found", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("FindByExternalID", mock.Anything, userID, externalID).Return(sampleAsset(), nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/v1/assets/digitalUsers/"+userID+"/"+externalID, nil)
		c.Params = gin.Params{
			{Key: "digitalUserId", Value: userID},
			{Key: "externalId", Value: externalID},
		}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.AssetResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "book-manager", response.ArtifactInformation.ArtifactID)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("FindByExternalID", mock.Anything, userID, externalID).
			Return(nil, assetDomain.ErrAssetNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/", nil)
		c.Params = gin.Params{
			{Key: "digitalUserId", Value: userID},
			{Key: "externalId", Value: externalID},
		}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidExternalID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/", nil)
		c.Params = gin.Params{
			{Key: "digitalUserId", Value: userID},
			{Key: "externalId", Value: "not-a-uuid"},
		}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAssetHandler_ListHandler(t *testing.T) {
	t.Run("Success_DefaultsAndFilters", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("ListByCriteria", mock.Anything, mock.MatchedBy(func(c assetDomain.ListCriteria) bool {
			return c.DigitalUserID == userID &&
				c.Offset == assetDomain.DefaultOffset &&
				c.Limit == assetDomain.DefaultLimit &&
				c.GroupID == "com.tracktainment" &&
				c.CreatedAt != nil
		})).Return([]assetDomain.Asset{*sampleAsset()}, nil).Once()

		c, w := createTestContext(
			http.MethodGet,
			"/api/v1/assets?digitalUserId="+userID+"&groupId=com.tracktainment&createdAt=2024-03-01",
			nil,
		)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []dto.AssetResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 1)
	})

	t.Run("Success_EmptyArray", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("ListByCriteria", mock.Anything, mock.Anything).Return([]assetDomain.Asset{}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/v1/assets?digitalUserId="+userID+"&offset=5&limit=2", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Error_MissingDigitalUserID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/v1/assets", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_LimitOutOfRange", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/v1/assets?digitalUserId="+userID+"&limit=101", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "invalid_input", decodeError(t, w).Error)
	})

	t.Run("Error_UserNotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("ListByCriteria", mock.Anything, mock.Anything).
			Return(nil, assetDomain.ErrAssetNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/api/v1/assets?digitalUserId="+userID, nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAssetHandler_DeleteHandler(t *testing.T) {
	t.Run("Success_Deleted", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Delete", mock.Anything, userID, externalID).Return(nil).Once()

		c, w := createTestContext(
			http.MethodDelete,
			"/api/v1/assets?digitalUserId="+userID+"&externalId="+externalID,
			nil,
		)

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, c.Writer.Status())
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Delete", mock.Anything, userID, externalID).Return(assetDomain.ErrAssetNotFound).Once()

		c, w := createTestContext(
			http.MethodDelete,
			"/api/v1/assets?digitalUserId="+userID+"&externalId="+externalID,
			nil,
		)

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_MissingExternalID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodDelete, "/api/v1/assets?digitalUserId="+userID, nil)

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
