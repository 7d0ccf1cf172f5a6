package dto

import (
	"github.com/hotelops/hotel-ops-api/internal/domain"
)

// ToTask converts a CreateTaskRequest to a Task domain model. Identity fields
// (id, tenant id, task number, status, timestamps) are assigned by the
// service; the request can never set them.
func (r *CreateTaskRequest) ToTask() *domain.Task {
	priority := r.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	return &domain.Task{
		Title:            r.Title,
		Description:      r.Description,
		Category:         r.Category,
		Priority:         priority,
		AssignedTo:       r.AssignedTo,
		Department:       r.Department,
		DueDate:          r.DueDate,
		DueTime:          r.DueTime,
		EstimatedMinutes: r.EstimatedMinutes,
		RoomID:           r.RoomID,
		GuestID:          r.GuestID,
		ReservationID:    r.ReservationID,
	}
}

func (r *CreateMenuItemRequest) ToMenuItem() *domain.MenuItem {
	prepTime := r.PreparationTime
	if prepTime <= 0 {
		prepTime = 15
	}
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return &domain.MenuItem{
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Price:           r.Price,
		PreparationTime: prepTime,
		IsVegetarian:    r.IsVegetarian,
		IsAvailable:     available,
	}
}

func (r *CreateAccountRequest) ToAccount() *domain.Account {
	currency := r.Currency
	if currency == "" {
		currency = "INR"
	}
	return &domain.Account{
		Code:            r.Code,
		Name:            r.Name,
		Type:            r.Type,
		Description:     r.Description,
		Currency:        currency,
		IsActive:        true,
		IsSystemAccount: r.IsSystemAccount,
	}
}

func (r *CreateEmployeeRequest) ToEmployee() *domain.Employee {
	employmentType := r.EmploymentType
	if employmentType == "" {
		employmentType = "full_time"
	}
	return &domain.Employee{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Department:     r.Department,
		Designation:    r.Designation,
		JoiningDate:    r.JoiningDate,
		Status:         domain.EmployeeActive,
		EmploymentType: employmentType,
	}
}
