package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

type InvoiceService interface {
	GetAll(ctx context.Context, tenantID string, filter domain.InvoiceFilter) (tenancy.Page[domain.Invoice], error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Invoice, error)
	Create(ctx context.Context, tenantID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	RecordPayment(ctx context.Context, tenantID, id string, amount int64) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status domain.InvoiceStatus) (*domain.Invoice, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type InvoiceHandler struct {
	*BaseHandler
	service InvoiceService
}

func NewInvoiceHandler(service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := domain.InvoiceFilter{
		Status:    domain.InvoiceStatus(c.Query("status")),
		GuestID:   c.Query("guest_id"),
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

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.GetByID(h.RequestCtx(c), h.TenantID(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	invoice, err := h.service.Create(h.RequestCtx(c), h.TenantID(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	invoice, err := h.service.RecordPayment(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req.Amount)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	invoice, err := h.service.UpdateStatus(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req.Status)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), h.TenantID(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
