package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
)

type MenuService interface {
	GetAll(ctx context.Context, tenantID string, filter domain.MenuItemFilter) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, tenantID string, req dto.CreateMenuItemRequest) (*domain.MenuItem, error)
	Update(ctx context.Context, tenantID, id string, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type MenuHandler struct {
	*BaseHandler
	service MenuService
}

func NewMenuHandler(service MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	filter := domain.MenuItemFilter{
		Category: domain.MenuCategory(c.Query("category")),
		Search:   c.Query("search"),
	}
	if raw := c.Query("is_available"); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			filter.IsAvailable = &available
		}
	}

	items, err := h.service.GetAll(h.RequestCtx(c), h.TenantID(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	item, err := h.service.GetByID(h.RequestCtx(c), h.TenantID(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	item, err := h.service.Create(h.RequestCtx(c), h.TenantID(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	item, err := h.service.Update(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), h.TenantID(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
