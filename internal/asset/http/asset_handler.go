// Package http provides HTTP handlers for a digital user's assets. Every route
// runs behind bearer authentication; the use case compares the token subject
// with the digital user id.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
	"github.com/tracktainment/duxmanager/internal/asset/http/dto"
	assetUseCase "github.com/tracktainment/duxmanager/internal/asset/usecase"
	"github.com/tracktainment/duxmanager/internal/httputil"
	customValidation "github.com/tracktainment/duxmanager/internal/validation"
)

// AssetHandler handles HTTP requests for asset operations.
type AssetHandler struct {
	assetUseCase assetUseCase.AssetUseCase
	logger       *slog.Logger
}

// NewAssetHandler creates a new asset handler with required dependencies.
func NewAssetHandler(assetUseCase assetUseCase.AssetUseCase, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		assetUseCase: assetUseCase,
		logger:       logger,
	}
}

// CreateHandler appends an asset to the digital user's list.
// POST /api/v1/assets/digitalUsers/:digitalUserId
// Returns 201 Created, 409 when the external id is already present, 404 when the user does not exist.
func (h *AssetHandler) CreateHandler(c *gin.Context) {
	digitalUserID := c.Param("digitalUserId")
	if err := validation.Validate(digitalUserID, validation.Required, customValidation.ID); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	in, err := req.ToDomain()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	asset, err := h.assetUseCase.Create(c.Request.Context(), digitalUserID, in)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAssetToResponse(*asset))
}

// GetHandler returns one asset of the digital user's list.
// GET /api/v1/assets/digitalUsers/:digitalUserId/:externalId
func (h *AssetHandler) GetHandler(c *gin.Context) {
	digitalUserID := c.Param("digitalUserId")
	externalID := c.Param("externalId")
	if err := (validation.Errors{
		"digitalUserId": validation.Validate(digitalUserID, validation.Required, customValidation.ID),
		"externalId":    validation.Validate(externalID, validation.Required, customValidation.ID),
	}).Filter(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	asset, err := h.assetUseCase.FindByExternalID(c.Request.Context(), digitalUserID, externalID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAssetToResponse(*asset))
}

// ListHandler lists the digital user's assets matching the query filters.
// GET /api/v1/assets?digitalUserId=&offset=&limit=&externalIds=&groupId=&artifactId=&type=&createdAt=&from=&to=
// Returns 200 OK with a JSON array, empty when nothing matches.
func (h *AssetHandler) ListHandler(c *gin.Context) {
	var query dto.ListAssetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := query.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c, assetDomain.DefaultLimit, assetDomain.MaxLimit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	assets, err := h.assetUseCase.ListByCriteria(c.Request.Context(), query.ToCriteria(offset, limit))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAssetsToResponse(assets))
}

// DeleteHandler removes an asset from the digital user's list.
// DELETE /api/v1/assets?digitalUserId=&externalId=
// Returns 204 No Content, or 404 when the asset is absent.
func (h *AssetHandler) DeleteHandler(c *gin.Context) {
	var query dto.DeleteAssetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := query.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.assetUseCase.Delete(c.Request.Context(), query.DigitalUserID, query.ExternalID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
