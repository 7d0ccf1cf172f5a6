package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

type TaskService interface {
	GetAll(ctx context.Context, tenantID string, filter domain.TaskFilter) (tenancy.Page[domain.Task], error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Task, error)
	Create(ctx context.Context, tenantID string, req dto.CreateTaskRequest) (*domain.Task, error)
	Update(ctx context.Context, tenantID, id string, req dto.UpdateTaskRequest) (*domain.Task, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status domain.TaskStatus, actor string) (*domain.Task, error)
	Assign(ctx context.Context, tenantID, id, employeeID string) (*domain.Task, error)
	Delete(ctx context.Context, tenantID, id string) error
	GetStats(ctx context.Context, tenantID string) (*domain.TaskStats, error)
}

type TaskHandler struct {
	*BaseHandler
	service TaskService
}

func NewTaskHandler(service TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks returns the tenant's tasks with filtering and pagination.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := domain.TaskFilter{
		Priority:   domain.TaskPriority(c.Query("priority")),
		Category:   domain.TaskCategory(c.Query("category")),
		AssignedTo: c.Query("assigned_to"),
		Department: c.Query("department"),
		DueDate:    c.Query("due_date"),
		Search:     c.Query("search"),
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "page_size"),
	}
	for _, s := range splitQueryList(c.Query("status")) {
		filter.Statuses = append(filter.Statuses, domain.TaskStatus(s))
	}

	page, err := h.service.GetAll(h.RequestCtx(c), h.TenantID(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.service.GetByID(h.RequestCtx(c), h.TenantID(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	task, err := h.service.Create(h.RequestCtx(c), h.TenantID(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	task, err := h.service.Update(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	task, err := h.service.UpdateStatus(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req.Status, h.UserID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) AssignTask(c *gin.Context) {
	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	task, err := h.service.Assign(h.RequestCtx(c), h.TenantID(c), c.Param("id"), req.EmployeeID)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), h.TenantID(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (h *TaskHandler) GetTaskStats(c *gin.Context) {
	stats, err := h.service.GetStats(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}

func splitQueryList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
