// Package http provides HTTP handlers for digital user management.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/tracktainment/duxmanager/internal/digitaluser/http/dto"
	userUseCase "github.com/tracktainment/duxmanager/internal/digitaluser/usecase"
	"github.com/tracktainment/duxmanager/internal/httputil"
	customValidation "github.com/tracktainment/duxmanager/internal/validation"
)

// DigitalUserHandler handles HTTP requests for digital user operations.
type DigitalUserHandler struct {
	digitalUserUseCase userUseCase.DigitalUserUseCase
	logger             *slog.Logger
}

// NewDigitalUserHandler creates a new digital user handler with required dependencies.
func NewDigitalUserHandler(
	digitalUserUseCase userUseCase.DigitalUserUseCase,
	logger *slog.Logger,
) *DigitalUserHandler {
	return &DigitalUserHandler{
		digitalUserUseCase: digitalUserUseCase,
		logger:             logger,
	}
}

// CreateHandler creates a new digital user.
// POST /api/v1/digitalUsers
// Returns 201 Created, or 409 when the identity provider triple is taken.
func (h *DigitalUserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateDigitalUserRequest
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

	user, err := h.digitalUserUseCase.Create(c.Request.Context(), in)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapDigitalUserToResponse(*user))
}

// GetHandler retrieves a digital user by ID.
// GET /api/v1/digitalUsers/:id
func (h *DigitalUserHandler) GetHandler(c *gin.Context) {
	id := c.Param("id")
	if err := validation.Validate(id, validation.Required, customValidation.ID); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.digitalUserUseCase.FindByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDigitalUserToResponse(*user))
}

// FindByCompositeKeyHandler retrieves a digital user by its identity provider triple.
// GET /api/v1/digitalUsers?identityProviderInformation.subject=&identityProviderInformation.identityProvider=&identityProviderInformation.tenantId=
func (h *DigitalUserHandler) FindByCompositeKeyHandler(c *gin.Context) {
	var query dto.IdentityProviderInformationRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := query.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := query.ToDomain()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.digitalUserUseCase.FindByCompositeKey(c.Request.Context(), key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDigitalUserToResponse(*user))
}

// DeleteHandler deletes a digital user and every asset it owns.
// DELETE /api/v1/digitalUsers/:id
// Returns 204 No Content.
func (h *DigitalUserHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := validation.Validate(id, validation.Required, customValidation.ID); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.digitalUserUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
