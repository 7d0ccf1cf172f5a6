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
)

type EmployeeService struct {
	repo repository.Repository
}

func NewEmployeeService(repo repository.Repository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// GetAll lists the tenant's employees sorted by name.
func (s *EmployeeService) GetAll(ctx context.Context, tenantID string, filter domain.EmployeeFilter) (tenancy.Page[domain.Employee], error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return tenancy.Page[domain.Employee]{}, err
	}

	employees, err := s.repo.Employees().List(ctx, tenantID)
	if err != nil {
		return tenancy.Page[domain.Employee]{}, fmt.Errorf("failed to list employees: %w", err)
	}

	filtered := employees[:0:0]
	for _, e := range employees {
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			name := strings.ToLower(e.FirstName + " " + e.LastName)
			if !strings.Contains(name, search) &&
				!strings.Contains(strings.ToLower(e.EmployeeCode), search) &&
				!strings.Contains(strings.ToLower(e.Email), search) {
				continue
			}
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].FirstName != filtered[j].FirstName {
			return filtered[i].FirstName < filtered[j].FirstName
		}
		return filtered[i].LastName < filtered[j].LastName
	})

	return tenancy.Paginate(filtered, filter.Page, filter.PageSize), nil
}

func (s *EmployeeService) GetByID(ctx context.Context, tenantID, id string) (*domain.Employee, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	return s.repo.Employees().GetByID(ctx, tenantID, id)
}

// Create registers an employee. Emails are unique within a tenant; the same
// person can work for two hotels with the same address.
func (s *EmployeeService) Create(ctx context.Context, tenantID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	if req.JoiningDate != "" {
		if _, err := time.Parse(dateLayout, req.JoiningDate); err != nil {
			return nil, newValidationError("joining_date", "must be a YYYY-MM-DD date")
		}
	}

	existing, err := s.repo.Employees().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	for _, e := range existing {
		if strings.EqualFold(e.Email, req.Email) {
			return nil, newValidationError("email", "email already in use")
		}
	}

	employee := req.ToEmployee()
	now := time.Now()
	employee.ID = uuid.New().String()
	employee.TenantID = tenantID
	employee.EmployeeCode = nextNumber(fmt.Sprintf("EMP-%d", now.Year()), employeeCodes(existing))
	if employee.JoiningDate == "" {
		employee.JoiningDate = now.Format(dateLayout)
	}
	employee.CreatedAt = now
	employee.UpdatedAt = now

	if err := s.repo.Employees().Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

func employeeCodes(employees []domain.Employee) []string {
	codes := make([]string, len(employees))
	for i, e := range employees {
		codes[i] = e.EmployeeCode
	}
	return codes
}

func (s *EmployeeService) Update(ctx context.Context, tenantID, id string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	employee, err := s.repo.Employees().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	if req.Email != nil && !strings.EqualFold(*req.Email, employee.Email) {
		others, err := s.repo.Employees().List(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
		for _, e := range others {
			if e.ID != id && strings.EqualFold(e.Email, *req.Email) {
				return nil, newValidationError("email", "email already in use")
			}
		}
		employee.Email = *req.Email
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Designation != nil {
		employee.Designation = *req.Designation
	}
	employee.UpdatedAt = time.Now()

	if err := s.repo.Employees().Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) UpdateStatus(ctx context.Context, tenantID, id string, status domain.EmployeeStatus) (*domain.Employee, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	employee, err := s.repo.Employees().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee == nil {
		return nil, ErrNotFound
	}
	if !domain.CanTransitionEmployee(employee.Status, status) {
		return nil, fmt.Errorf("%w: employee cannot move from %s to %s", ErrInvalidState, employee.Status, status)
	}

	employee.Status = status
	employee.UpdatedAt = time.Now()

	if err := s.repo.Employees().Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// ClockIn opens today's attendance record for an employee. Clocking in twice
// on the same day is an invalid state, not a second record.
func (s *EmployeeService) ClockIn(ctx context.Context, tenantID, employeeID string) (*domain.AttendanceRecord, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	employee, err := s.repo.Employees().GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee == nil {
		return nil, newValidationError("employee_id", "employee does not exist")
	}
	if employee.Status != domain.EmployeeActive {
		return nil, fmt.Errorf("%w: employee is not active", ErrInvalidState)
	}

	now := time.Now()
	today := now.Format(dateLayout)
	if existing, err := s.findAttendance(ctx, tenantID, employeeID, today); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: employee already clocked in today", ErrInvalidState)
	}

	record := &domain.AttendanceRecord{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		EmployeeID: employeeID,
		Date:       today,
		Status:     domain.AttendancePresent,
		ClockIn:    &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Attendance().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return record, nil
}

// ClockOut closes today's attendance record and computes the hours worked.
func (s *EmployeeService) ClockOut(ctx context.Context, tenantID, employeeID string) (*domain.AttendanceRecord, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	now := time.Now()
	record, err := s.findAttendance(ctx, tenantID, employeeID, now.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	if record == nil || record.ClockIn == nil {
		return nil, fmt.Errorf("%w: employee has not clocked in today", ErrInvalidState)
	}
	if record.ClockOut != nil {
		return nil, fmt.Errorf("%w: employee already clocked out today", ErrInvalidState)
	}

	record.ClockOut = &now
	record.TotalHours = now.Sub(*record.ClockIn).Hours()
	record.UpdatedAt = now

	if err := s.repo.Attendance().Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return record, nil
}

func (s *EmployeeService) findAttendance(ctx context.Context, tenantID, employeeID, date string) (*domain.AttendanceRecord, error) {
	records, err := s.repo.Attendance().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	for i := range records {
		if records[i].EmployeeID == employeeID && records[i].Date == date {
			return &records[i], nil
		}
	}
	return nil, nil
}

// GetAttendance lists the tenant's attendance records, newest date first.
func (s *EmployeeService) GetAttendance(ctx context.Context, tenantID string, filter domain.AttendanceFilter) (tenancy.Page[domain.AttendanceRecord], error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return tenancy.Page[domain.AttendanceRecord]{}, err
	}

	records, err := s.repo.Attendance().List(ctx, tenantID)
	if err != nil {
		return tenancy.Page[domain.AttendanceRecord]{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	filtered := records[:0:0]
	for _, r := range records {
		if filter.EmployeeID != "" && r.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.StartDate != "" && r.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && r.Date > filter.EndDate {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	return tenancy.Paginate(filtered, filter.Page, filter.PageSize), nil
}
