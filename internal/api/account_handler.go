package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

type AccountService interface {
	GetAll(ctx context.Context, tenantID string, filter domain.AccountFilter) ([]domain.Account, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Account, error)
	Create(ctx context.Context, tenantID string, req dto.CreateAccountRequest) (*domain.Account, error)
	Update(ctx context.Context, tenantID, id string, req dto.UpdateAccountRequest) (*domain.Account, error)
	Delete(ctx context.Context, tenantID, id string) error
	GetTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) (tenancy.Page[domain.Transaction], error)
	RecordTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

type AccountHandler struct {
	*BaseHandler
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// ListAccounts returns the tenant's chart of accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	filter := domain.AccountFilter{
		Type:   domain.AccountType(c.Query("type")),
		Search: c.Query("search"),
	}
	if raw := c.Query("is_active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}

	accounts, err := h.service.GetAll(h.RequestCtx(c), h.TenantID(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.service.GetByID(h.RequestCtx(c), h.TenantID(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Account not found"})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	account, err := h.service.Create(h.RequestCtx(c), h.TenantID(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	account, err := h.service.Update(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), h.TenantID(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// ListTransactions returns the tenant's ledger entries.
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	filter := domain.TransactionFilter{
		Type:      domain.TransactionType(c.Query("type")),
		AccountID: c.Query("account_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Search:    c.Query("search"),
		Page:      queryInt(c, "page"),
		PageSize:  queryInt(c, "page_size"),
	}

	page, err := h.service.GetTransactions(h.RequestCtx(c), h.TenantID(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AccountHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	transaction, err := h.service.RecordTransaction(h.RequestCtx(c), h.TenantID(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}
