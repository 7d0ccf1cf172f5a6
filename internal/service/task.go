package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/repository"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
	"github.com/hotelops/hotel-ops-api/pkg/utils"
)

const dateLayout = utils.DateLayout

type TaskService struct {
	repo repository.Repository
}

func NewTaskService(repo repository.Repository) *TaskService {
	return &TaskService{repo: repo}
}

// GetAll lists the tenant's tasks, filtered and sorted by due date ascending
// then priority (urgent first). The sort is stable so ties keep their
// insertion order across calls.
func (s *TaskService) GetAll(ctx context.Context, tenantID string, filter domain.TaskFilter) (tenancy.Page[domain.Task], error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return tenancy.Page[domain.Task]{}, err
	}

	tasks, err := s.repo.Tasks().List(ctx, tenantID)
	if err != nil {
		return tenancy.Page[domain.Task]{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks = filterTasks(tasks, filter)

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].DueDate != tasks[j].DueDate {
			return tasks[i].DueDate < tasks[j].DueDate
		}
		return domain.PriorityRank(tasks[i].Priority) < domain.PriorityRank(tasks[j].Priority)
	})

	return tenancy.Paginate(tasks, filter.Page, filter.PageSize), nil
}

func filterTasks(tasks []domain.Task, filter domain.TaskFilter) []domain.Task {
	result := tasks[:0:0]
	for _, t := range tasks {
		if len(filter.Statuses) > 0 && !containsTaskStatus(filter.Statuses, t.Status) {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
			continue
		}
		if filter.Department != "" && t.Department != filter.Department {
			continue
		}
		if filter.DueDate != "" && t.DueDate != filter.DueDate {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(t.Title), search) &&
				!strings.Contains(strings.ToLower(t.TaskNumber), search) {
				continue
			}
		}
		result = append(result, t)
	}
	return result
}

func containsTaskStatus(statuses []domain.TaskStatus, status domain.TaskStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s *TaskService) GetByID(ctx context.Context, tenantID, id string) (*domain.Task, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	return s.repo.Tasks().GetByID(ctx, tenantID, id)
}

// Create builds a new task owned by the caller's tenant. The tenant id always
// comes from the session, never from the payload; an assignee is validated
// through a tenant-scoped lookup so an employee id belonging to another
// tenant behaves exactly like an unknown id.
func (s *TaskService) Create(ctx context.Context, tenantID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	if _, err := utils.ParseDate(req.DueDate); err != nil {
		return nil, newValidationError("due_date", "must be a YYYY-MM-DD date")
	}

	task := req.ToTask()
	task.Status = domain.TaskPending

	if req.AssignedTo != "" {
		employee, err := s.repo.Employees().GetByID(ctx, tenantID, req.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("failed to look up assignee: %w", err)
		}
		if employee == nil {
			return nil, newValidationError("assigned_to", "employee does not exist")
		}
		task.Status = domain.TaskAssigned
	}

	existing, err := s.repo.Tasks().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	now := time.Now()
	task.ID = uuid.New().String()
	task.TenantID = tenantID
	task.TaskNumber = nextNumber(fmt.Sprintf("TK-%d", now.Year()), taskNumbers(existing))
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.repo.Tasks().Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func taskNumbers(tasks []domain.Task) []string {
	numbers := make([]string, len(tasks))
	for i, t := range tasks {
		numbers[i] = t.TaskNumber
	}
	return numbers
}

// Update merges a partial update into the task after re-validating tenant
// ownership.
func (s *TaskService) Update(ctx context.Context, tenantID, id string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	task, err := s.repo.Tasks().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo != "" {
			employee, err := s.repo.Employees().GetByID(ctx, tenantID, *req.AssignedTo)
			if err != nil {
				return nil, fmt.Errorf("failed to look up assignee: %w", err)
			}
			if employee == nil {
				return nil, newValidationError("assigned_to", "employee does not exist")
			}
		}
		task.AssignedTo = *req.AssignedTo
	}
	if req.Department != nil {
		task.Department = *req.Department
	}
	if req.DueDate != nil {
		if _, err := utils.ParseDate(*req.DueDate); err != nil {
			return nil, newValidationError("due_date", "must be a YYYY-MM-DD date")
		}
		task.DueDate = *req.DueDate
	}
	if req.DueTime != nil {
		task.DueTime = *req.DueTime
	}
	if req.EstimatedMinutes != nil {
		task.EstimatedMinutes = *req.EstimatedMinutes
	}
	task.UpdatedAt = time.Now()

	if err := s.repo.Tasks().Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// UpdateStatus applies a status transition, stamping startedAt when the task
// enters in_progress and completedAt/completedBy when it completes.
func (s *TaskService) UpdateStatus(ctx context.Context, tenantID, id string, status domain.TaskStatus, actor string) (*domain.Task, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	task, err := s.repo.Tasks().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if !domain.CanTransitionTask(task.Status, status) {
		return nil, fmt.Errorf("%w: task cannot move from %s to %s", ErrInvalidState, task.Status, status)
	}

	now := time.Now()
	task.Status = status
	task.UpdatedAt = now
	switch status {
	case domain.TaskInProgress:
		if task.StartedAt == nil {
			task.StartedAt = &now
		}
	case domain.TaskCompleted:
		task.CompletedAt = &now
		task.CompletedBy = actor
	}

	if err := s.repo.Tasks().Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Assign hands the task to an employee of the same tenant.
func (s *TaskService) Assign(ctx context.Context, tenantID, id, employeeID string) (*domain.Task, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	task, err := s.repo.Tasks().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if task.Status != domain.TaskAssigned && !domain.CanTransitionTask(task.Status, domain.TaskAssigned) {
		return nil, fmt.Errorf("%w: task in status %s cannot be assigned", ErrInvalidState, task.Status)
	}

	employee, err := s.repo.Employees().GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up assignee: %w", err)
	}
	if employee == nil {
		return nil, newValidationError("employee_id", "employee does not exist")
	}

	task.AssignedTo = employeeID
	task.Status = domain.TaskAssigned
	task.UpdatedAt = time.Now()

	if err := s.repo.Tasks().Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, tenantID, id string) error {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return err
	}

	task, err := s.repo.Tasks().GetByID(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return ErrNotFound
	}
	if err := s.repo.Tasks().Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetStats summarizes the tenant's tasks for the dashboard.
func (s *TaskService) GetStats(ctx context.Context, tenantID string) (*domain.TaskStats, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	tasks, err := s.repo.Tasks().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	today := utils.Today()
	stats := &domain.TaskStats{Total: int64(len(tasks))}
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskPending:
			stats.Pending++
		case domain.TaskInProgress:
			stats.InProgress++
		case domain.TaskCompleted:
			stats.Completed++
		}
		active := t.Status != domain.TaskCompleted && t.Status != domain.TaskCancelled
		if active && t.DueDate < today {
			stats.Overdue++
		}
		if active && t.DueDate == today {
			stats.DueToday++
		}
		if active && t.Priority == domain.PriorityUrgent {
			stats.Urgent++
		}
	}
	return stats, nil
}
