package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

type EmployeeService interface {
	GetAll(ctx context.Context, tenantID string, filter domain.EmployeeFilter) (tenancy.Page[domain.Employee], error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Employee, error)
	Create(ctx context.Context, tenantID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, tenantID, id string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status domain.EmployeeStatus) (*domain.Employee, error)
	ClockIn(ctx context.Context, tenantID, employeeID string) (*domain.AttendanceRecord, error)
	ClockOut(ctx context.Context, tenantID, employeeID string) (*domain.AttendanceRecord, error)
	GetAttendance(ctx context.Context, tenantID string, filter domain.AttendanceFilter) (tenancy.Page[domain.AttendanceRecord], error)
}

type EmployeeHandler struct {
	*BaseHandler
	service EmployeeService
}

func NewEmployeeHandler(service EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	filter := domain.EmployeeFilter{
		Department: domain.Department(c.Query("department")),
		Status:     domain.EmployeeStatus(c.Query("status")),
		Search:     c.Query("search"),
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "page_size"),
	}

	page, err := h.service.GetAll(h.RequestCtx(c), h.TenantID(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.service.GetByID(h.RequestCtx(c), h.TenantID(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	employee, err := h.service.Create(h.RequestCtx(c), h.TenantID(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	employee, err := h.service.Update(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) UpdateEmployeeStatus(c *gin.Context) {
	var req dto.UpdateEmployeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	employee, err := h.service.UpdateStatus(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req.Status)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) ClockIn(c *gin.Context) {
	var req dto.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	record, err := h.service.ClockIn(h.RequestCtx(c), h.TenantID(c), req.EmployeeID)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *EmployeeHandler) ClockOut(c *gin.Context) {
	var req dto.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	record, err := h.service.ClockOut(h.RequestCtx(c), h.TenantID(c), req.EmployeeID)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *EmployeeHandler) ListAttendance(c *gin.Context) {
	filter := domain.AttendanceFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     domain.AttendanceStatus(c.Query("status")),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "page_size"),
	}

	page, err := h.service.GetAttendance(h.RequestCtx(c), h.TenantID(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
