package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/service"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
	"github.com/hotelops/hotel-ops-api/internal/utils"
)

type TaskHandlerTestSuite struct {
	suite.Suite
	mockService *MockTaskService
	handler     *TaskHandler
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) GetAll(ctx context.Context, tenantID string, filter domain.TaskFilter) (tenancy.Page[domain.Task], error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(tenancy.Page[domain.Task]), args.Error(1)
}

func (m *MockTaskService) GetByID(ctx context.Context, tenantID, id string) (*domain.Task, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, tenantID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, tenantID, id string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) UpdateStatus(ctx context.Context, tenantID, id string, status domain.TaskStatus, actor string) (*domain.Task, error) {
	args := m.Called(ctx, tenantID, id, status, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) Assign(ctx context.Context, tenantID, id, employeeID string) (*domain.Task, error) {
	args := m.Called(ctx, tenantID, id, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockTaskService) GetStats(ctx context.Context, tenantID string) (*domain.TaskStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskStats), args.Error(1)
}

func (s *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockTaskService)
	s.handler = NewTaskHandler(s.mockService)
}

func TestTaskHandler(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}

// newTenantContext builds a test context carrying the tenant claim, the way
// the auth middleware would have left it.
func newTenantContext(w *httptest.ResponseRecorder, method, target string, body []byte) (*gin.Context, error) {
	c, _ := gin.CreateTestContext(w)
	var buf *bytes.Buffer
	if body != nil {
		buf = bytes.NewBuffer(body)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, target, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(string(utils.TenantIDKey), "tenant1")
	return c, nil
}

func (s *TaskHandlerTestSuite) TestListTasks_ParsesQuery() {
	// Arrange
	expectedFilter := domain.TaskFilter{
		Statuses: []domain.TaskStatus{domain.TaskPending, domain.TaskInProgress},
		Priority: domain.PriorityUrgent,
		Page:     2,
		PageSize: 20,
	}
	page := tenancy.Page[domain.Task]{Items: []domain.Task{}, Page: 2, PageSize: 20}
	s.mockService.On("GetAll", mock.Anything, "tenant1", expectedFilter).Return(page, nil)

	w := httptest.NewRecorder()
	c, err := newTenantContext(w, http.MethodGet, "/tasks?status=pending,in_progress&priority=urgent&page=2&page_size=20", nil)
	s.Require().NoError(err)

	// Act
	s.handler.ListTasks(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *TaskHandlerTestSuite) TestGetTask_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "tenant1", "task1").Return(nil, nil)

	w := httptest.NewRecorder()
	c, err := newTenantContext(w, http.MethodGet, "/tasks/task1", nil)
	s.Require().NoError(err)
	c.Params = gin.Params{{Key: "id", Value: "task1"}}

	// Act
	s.handler.GetTask(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TaskHandlerTestSuite) TestCreateTask_Success() {
	// Arrange
	req := dto.CreateTaskRequest{
		Title:    "Clean room 101",
		Category: domain.TaskHousekeeping,
		DueDate:  "2026-09-05",
	}
	task := &domain.Task{ID: "task1", TenantID: "tenant1", Title: req.Title, TaskNumber: "TK-2026-0001"}
	s.mockService.On("Create", mock.Anything, "tenant1", req).Return(task, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, err := newTenantContext(w, http.MethodPost, "/tasks", body)
	s.Require().NoError(err)

	// Act
	s.handler.CreateTask(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response domain.Task
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("TK-2026-0001", response.TaskNumber)
	s.mockService.AssertExpectations(s.T())
}

func (s *TaskHandlerTestSuite) TestCreateTask_InvalidBody() {
	// Arrange
	w := httptest.NewRecorder()
	c, err := newTenantContext(w, http.MethodPost, "/tasks", []byte(`{"title":""}`))
	s.Require().NoError(err)

	// Act
	s.handler.CreateTask(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create")
}

func (s *TaskHandlerTestSuite) TestCreateTask_ValidationErrorMapsTo400() {
	// Arrange
	req := dto.CreateTaskRequest{
		Title:    "Clean room 101",
		Category: domain.TaskHousekeeping,
		DueDate:  "2026-09-05",
	}
	s.mockService.On("Create", mock.Anything, "tenant1", req).
		Return(nil, &service.ValidationError{Field: "assigned_to", Reason: "employee does not exist"})

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, err := newTenantContext(w, http.MethodPost, "/tasks", body)
	s.Require().NoError(err)

	// Act
	s.handler.CreateTask(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TaskHandlerTestSuite) TestUpdateTaskStatus_InvalidStateMapsTo422() {
	// Arrange
	s.mockService.On("UpdateStatus", mock.Anything, "tenant1", "task1", domain.TaskCompleted, "").
		Return(nil, service.ErrInvalidState)

	body, _ := json.Marshal(dto.UpdateTaskStatusRequest{Status: domain.TaskCompleted})
	w := httptest.NewRecorder()
	c, err := newTenantContext(w, http.MethodPatch, "/tasks/task1/status", body)
	s.Require().NoError(err)
	c.Params = gin.Params{{Key: "id", Value: "task1"}}

	// Act
	s.handler.UpdateTaskStatus(c)

	// Assert
	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *TaskHandlerTestSuite) TestDeleteTask_NotFoundMapsTo404() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "tenant1", "task1").Return(service.ErrNotFound)

	w := httptest.NewRecorder()
	c, err := newTenantContext(w, http.MethodDelete, "/tasks/task1", nil)
	s.Require().NoError(err)
	c.Params = gin.Params{{Key: "id", Value: "task1"}}

	// Act
	s.handler.DeleteTask(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TaskHandlerTestSuite) TestListTasks_MissingTenantMapsTo401() {
	// Arrange: no tenant claim set on the context.
	s.mockService.On("GetAll", mock.Anything, "", domain.TaskFilter{}).
		Return(tenancy.Page[domain.Task]{}, tenancy.ErrMissingTenantContext)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/tasks", nil)

	// Act
	s.handler.ListTasks(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
}
