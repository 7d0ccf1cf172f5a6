package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/service"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
	"github.com/hotelops/hotel-ops-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// TenantID returns the tenant id the auth middleware extracted from the
// caller's token.
func (h *BaseHandler) TenantID(c *gin.Context) string {
	return c.GetString(string(utils.TenantIDKey))
}

// UserID returns the acting user's id from the caller's token.
func (h *BaseHandler) UserID(c *gin.Context) string {
	return utils.GetUserIDFromContext(h.RequestCtx(c))
}

// RespondError translates service errors into HTTP statuses: a missing
// tenant context is an authorization failure, unknown or foreign records are
// not found, rejected lifecycle moves are unprocessable, and bad input is a
// bad request.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tenancy.ErrMissingTenantContext):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, dto.Error{Error: err.Error()})
	case service.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
