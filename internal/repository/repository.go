package repository

import (
	"context"
	"errors"

	"github.com/hotelops/hotel-ops-api/internal/domain"
)

// ErrNotFound is returned by Update and Delete when no record matches the
// given (id, tenant id) pair. A record owned by another tenant is reported
// exactly like a record that does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the uniform access contract for one tenant-scoped entity type.
// Every read and write is constrained to a single tenant; GetByID returns
// (nil, nil) when no record matches, whether the id is unknown or owned by a
// different tenant. List returns records in reverse insertion order.
type Store[T any] interface {
	Create(ctx context.Context, record *T) error
	GetByID(ctx context.Context, tenantID, id string) (*T, error)
	List(ctx context.Context, tenantID string) ([]T, error)
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, tenantID, id string) error
}

type TaskRepository interface{ Store[domain.Task] }

type OrderRepository interface{ Store[domain.Order] }

type MenuItemRepository interface{ Store[domain.MenuItem] }

type PurchaseOrderRepository interface{ Store[domain.PurchaseOrder] }

type InvoiceRepository interface{ Store[domain.Invoice] }

type AccountRepository interface{ Store[domain.Account] }

type TransactionRepository interface{ Store[domain.Transaction] }

type EmployeeRepository interface{ Store[domain.Employee] }

type AttendanceRepository interface{ Store[domain.AttendanceRecord] }

// TenantRepository manages tenants themselves; tenants are the unit of
// isolation and are not tenant-scoped.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

// Repository aggregates the per-entity stores. Services depend on this
// interface so the memory and postgres backends are interchangeable.
type Repository interface {
	Tasks() TaskRepository
	Orders() OrderRepository
	MenuItems() MenuItemRepository
	PurchaseOrders() PurchaseOrderRepository
	Invoices() InvoiceRepository
	Accounts() AccountRepository
	Transactions() TransactionRepository
	Employees() EmployeeRepository
	Attendance() AttendanceRepository
	Tenants() TenantRepository
}
