package domain

import (
	"time"
)

type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "active"
	EmployeeOnLeave    EmployeeStatus = "on_leave"
	EmployeeSuspended  EmployeeStatus = "suspended"
	EmployeeTerminated EmployeeStatus = "terminated"
)

var employeeTransitions = map[EmployeeStatus][]EmployeeStatus{
	EmployeeActive:     {EmployeeOnLeave, EmployeeSuspended, EmployeeTerminated},
	EmployeeOnLeave:    {EmployeeActive, EmployeeTerminated},
	EmployeeSuspended:  {EmployeeActive, EmployeeTerminated},
	EmployeeTerminated: {},
}

func CanTransitionEmployee(from, to EmployeeStatus) bool {
	for _, next := range employeeTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Department string

const (
	DeptFrontOffice  Department = "front_office"
	DeptHousekeeping Department = "housekeeping"
	DeptFoodBeverage Department = "food_beverage"
	DeptKitchen      Department = "kitchen"
	DeptEngineering  Department = "engineering"
	DeptSecurity     Department = "security"
	DeptFinance      Department = "finance"
	DeptManagement   Department = "management"
)

type Employee struct {
	ID             string         `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID       string         `gorm:"type:uuid;not null;index" json:"tenant_id"`
	EmployeeCode   string         `gorm:"type:text;not null" json:"employee_code"`
	FirstName      string         `gorm:"type:text;not null" json:"first_name"`
	LastName       string         `gorm:"type:text;not null" json:"last_name"`
	Email          string         `gorm:"type:text;not null" json:"email"`
	Phone          string         `gorm:"type:text" json:"phone,omitempty"`
	Department     Department     `gorm:"type:text;not null" json:"department"`
	Designation    string         `gorm:"type:text" json:"designation,omitempty"`
	JoiningDate    string         `gorm:"type:date" json:"joining_date,omitempty"`
	Status         EmployeeStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	EmploymentType string         `gorm:"type:text;not null;default:'full_time'" json:"employment_type"`
	CreatedAt      time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) GetID() string       { return e.ID }
func (e Employee) GetTenantID() string { return e.TenantID }

type EmployeeFilter struct {
	Department Department     `json:"department"`
	Status     EmployeeStatus `json:"status"`
	Search     string         `json:"search"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceOnLeave AttendanceStatus = "on_leave"
)

// AttendanceRecord tracks one employee's attendance for one date. At most one
// record per (employee, date) pair exists within a tenant.
type AttendanceRecord struct {
	ID         string           `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID   string           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	EmployeeID string           `gorm:"type:uuid;not null" json:"employee_id"`
	Date       string           `gorm:"type:date;not null" json:"date"`
	Status     AttendanceStatus `gorm:"type:text;not null;default:'present'" json:"status"`
	ClockIn    *time.Time       `gorm:"type:timestamp with time zone" json:"clock_in,omitempty"`
	ClockOut   *time.Time       `gorm:"type:timestamp with time zone" json:"clock_out,omitempty"`
	TotalHours float64          `json:"total_hours,omitempty"`
	Notes      string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (a AttendanceRecord) GetID() string       { return a.ID }
func (a AttendanceRecord) GetTenantID() string { return a.TenantID }

type AttendanceFilter struct {
	EmployeeID string           `json:"employee_id"`
	Status     AttendanceStatus `json:"status"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}
