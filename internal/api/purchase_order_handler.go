package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

type PurchaseOrderService interface {
	GetAll(ctx context.Context, tenantID string, filter domain.PurchaseOrderFilter) (tenancy.Page[domain.PurchaseOrder], error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.PurchaseOrder, error)
	Create(ctx context.Context, tenantID string, req dto.CreatePurchaseOrderRequest, createdBy string) (*domain.PurchaseOrder, error)
	Update(ctx context.Context, tenantID, id string, req dto.UpdatePurchaseOrderRequest) (*domain.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status domain.PurchaseOrderStatus, actor string) (*domain.PurchaseOrder, error)
	Delete(ctx context.Context, tenantID, id string) error
	GetStats(ctx context.Context, tenantID string) (*domain.PurchaseOrderStats, error)
}

type PurchaseOrderHandler struct {
	*BaseHandler
	service PurchaseOrderService
}

func NewPurchaseOrderHandler(service PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service}
}

func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	filter := domain.PurchaseOrderFilter{
		Status:    domain.PurchaseOrderStatus(c.Query("status")),
		VendorID:  c.Query("vendor_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Search:    c.Query("search"),
		Page:      queryInt(c, "page"),
		PageSize:  queryInt(c, "page_size"),
	}

	page, err := h.service.GetAll(h.RequestCtx(c), h.TenantID(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	po, err := h.service.GetByID(h.RequestCtx(c), h.TenantID(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if po == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Purchase order not found"})
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	po, err := h.service.Create(h.RequestCtx(c), h.TenantID(c), req, h.UserID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *PurchaseOrderHandler) UpdatePurchaseOrder(c *gin.Context) {
	var req dto.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	po, err := h.service.Update(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *PurchaseOrderHandler) UpdatePurchaseOrderStatus(c *gin.Context) {
	var req dto.UpdatePurchaseOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	po, err := h.service.UpdateStatus(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req.Status, h.UserID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *PurchaseOrderHandler) DeletePurchaseOrder(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), h.TenantID(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order deleted successfully"})
}

func (h *PurchaseOrderHandler) GetPurchaseOrderStats(c *gin.Context) {
	stats, err := h.service.GetStats(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
