package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

type OrderService interface {
	GetAll(ctx context.Context, tenantID string, filter domain.OrderFilter) (tenancy.Page[domain.Order], error)
	GetOpen(ctx context.Context, tenantID string) ([]domain.Order, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Order, error)
	Create(ctx context.Context, tenantID string, req dto.CreateOrderRequest, placedBy string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status domain.OrderStatus) (*domain.Order, error)
	GetStats(ctx context.Context, tenantID string) (*domain.OrderStats, error)
}

type OrderHandler struct {
	*BaseHandler
	service OrderService
}

func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// ListOrders returns the tenant's orders with filtering and pagination.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := domain.OrderFilter{
		Type:     domain.OrderType(c.Query("type")),
		GuestID:  c.Query("guest_id"),
		RoomID:   c.Query("room_id"),
		Date:     c.Query("date"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	for _, s := range splitQueryList(c.Query("status")) {
		filter.Statuses = append(filter.Statuses, domain.OrderStatus(s))
	}

	page, err := h.service.GetAll(h.RequestCtx(c), h.TenantID(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListOpenOrders returns the undelivered orders for the kitchen display,
// oldest first.
func (h *OrderHandler) ListOpenOrders(c *gin.Context) {
	orders, err := h.service.GetOpen(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.service.GetByID(h.RequestCtx(c), h.TenantID(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	order, err := h.service.Create(h.RequestCtx(c), h.TenantID(c), req, h.UserID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	order, err := h.service.UpdateStatus(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req.Status)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrderStats(c *gin.Context) {
	stats, err := h.service.GetStats(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
