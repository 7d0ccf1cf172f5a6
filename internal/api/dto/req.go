package dto

import (
	"github.com/hotelops/hotel-ops-api/internal/domain"
)

type CreateTenantRequest struct {
	Name      string `json:"name" binding:"required"`
	RateLimit int    `json:"rate_limit"`
}

type CreateTaskRequest struct {
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description"`
	Category         domain.TaskCategory `json:"category" binding:"required"`
	Priority         domain.TaskPriority `json:"priority"`
	AssignedTo       string              `json:"assigned_to"`
	Department       string              `json:"department"`
	DueDate          string              `json:"due_date" binding:"required"`
	DueTime          string              `json:"due_time"`
	EstimatedMinutes int                 `json:"estimated_minutes"`
	RoomID           string              `json:"room_id"`
	GuestID          string              `json:"guest_id"`
	ReservationID    string              `json:"reservation_id"`
}

// UpdateTaskRequest carries a partial update; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title            *string              `json:"title"`
	Description      *string              `json:"description"`
	Category         *domain.TaskCategory `json:"category"`
	Priority         *domain.TaskPriority `json:"priority"`
	AssignedTo       *string              `json:"assigned_to"`
	Department       *string              `json:"department"`
	DueDate          *string              `json:"due_date"`
	DueTime          *string              `json:"due_time"`
	EstimatedMinutes *int                 `json:"estimated_minutes"`
}

type UpdateTaskStatusRequest struct {
	Status domain.TaskStatus `json:"status" binding:"required"`
}

type AssignTaskRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

type CreateOrderItemRequest struct {
	MenuItemID          string `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateOrderRequest struct {
	Type                domain.OrderType         `json:"type" binding:"required"`
	GuestID             string                   `json:"guest_id"`
	RoomID              string                   `json:"room_id"`
	TableNumber         string                   `json:"table_number"`
	Items               []CreateOrderItemRequest `json:"items" binding:"required,min=1"`
	SpecialInstructions string                   `json:"special_instructions"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

type CreateMenuItemRequest struct {
	Name            string              `json:"name" binding:"required"`
	Description     string              `json:"description"`
	Category        domain.MenuCategory `json:"category" binding:"required"`
	Price           int64               `json:"price" binding:"required,min=1"`
	PreparationTime int                 `json:"preparation_time"`
	IsVegetarian    bool                `json:"is_vegetarian"`
	IsAvailable     *bool               `json:"is_available"`
}

type UpdateMenuItemRequest struct {
	Name            *string              `json:"name"`
	Description     *string              `json:"description"`
	Category        *domain.MenuCategory `json:"category"`
	Price           *int64               `json:"price"`
	PreparationTime *int                 `json:"preparation_time"`
	IsVegetarian    *bool                `json:"is_vegetarian"`
	IsAvailable     *bool                `json:"is_available"`
}

type CreatePurchaseOrderItemRequest struct {
	ItemID      string `json:"item_id"`
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" binding:"required,min=1"`
}

type CreatePurchaseOrderRequest struct {
	VendorID             string                           `json:"vendor_id" binding:"required"`
	Items                []CreatePurchaseOrderItemRequest `json:"items" binding:"required,min=1"`
	ExpectedDeliveryDate string                           `json:"expected_delivery_date"`
	DeliveryAddress      string                           `json:"delivery_address"`
	Notes                string                           `json:"notes"`
}

type UpdatePurchaseOrderRequest struct {
	Items                []CreatePurchaseOrderItemRequest `json:"items"`
	ExpectedDeliveryDate *string                          `json:"expected_delivery_date"`
	DeliveryAddress      *string                          `json:"delivery_address"`
	Notes                *string                          `json:"notes"`
}

type UpdatePurchaseOrderStatusRequest struct {
	Status domain.PurchaseOrderStatus `json:"status" binding:"required"`
}

type CreateInvoiceItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" binding:"required,min=1"`
}

type CreateInvoiceRequest struct {
	GuestID     string                     `json:"guest_id" binding:"required"`
	CompanyName string                     `json:"company_name"`
	DueDate     string                     `json:"due_date"`
	Items       []CreateInvoiceItemRequest `json:"items" binding:"required,min=1"`
	Notes       string                     `json:"notes"`
}

type RecordPaymentRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required"`
}

type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	Type            domain.AccountType `json:"type" binding:"required"`
	Description     string             `json:"description"`
	Currency        string             `json:"currency"`
	IsSystemAccount bool               `json:"is_system_account"`
}

type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreateTransactionRequest struct {
	AccountID     string                 `json:"account_id" binding:"required"`
	Type          domain.TransactionType `json:"type" binding:"required"`
	Amount        int64                  `json:"amount" binding:"required,min=1"`
	Description   string                 `json:"description" binding:"required"`
	Date          string                 `json:"date"`
	ReferenceType string                 `json:"reference_type"`
	ReferenceID   string                 `json:"reference_id"`
}

type CreateEmployeeRequest struct {
	FirstName      string            `json:"first_name" binding:"required"`
	LastName       string            `json:"last_name" binding:"required"`
	Email          string            `json:"email" binding:"required,email"`
	Phone          string            `json:"phone"`
	Department     domain.Department `json:"department" binding:"required"`
	Designation    string            `json:"designation"`
	JoiningDate    string            `json:"joining_date"`
	EmploymentType string            `json:"employment_type"`
}

type UpdateEmployeeRequest struct {
	FirstName   *string            `json:"first_name"`
	LastName    *string            `json:"last_name"`
	Email       *string            `json:"email"`
	Phone       *string            `json:"phone"`
	Department  *domain.Department `json:"department"`
	Designation *string            `json:"designation"`
}

type UpdateEmployeeStatusRequest struct {
	Status domain.EmployeeStatus `json:"status" binding:"required"`
}

type ClockRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}
