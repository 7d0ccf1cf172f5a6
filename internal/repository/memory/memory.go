// Package memory implements the repository contracts over in-process
// collections. It backs local development and the service tests; production
// deployments select the postgres backend through configuration.
package memory

import (
	"context"

	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/repository"
	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

// store adapts a Collection to the repository.Store contract using the
// tenancy helpers, so every lookup and mutation is tenant-constrained.
type store[T tenancy.Record] struct {
	col *Collection[T]
}

func newStore[T tenancy.Record]() *store[T] {
	return &store[T]{col: NewCollection[T]()}
}

func (s *store[T]) Create(_ context.Context, record *T) error {
	s.col.Insert(*record)
	return nil
}

func (s *store[T]) GetByID(_ context.Context, tenantID, id string) (*T, error) {
	record, ok := tenancy.FindByIDAndTenant(s.col.All(), id, tenantID)
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *store[T]) List(_ context.Context, tenantID string) ([]T, error) {
	return tenancy.FilterByTenant(s.col.All(), tenantID), nil
}

func (s *store[T]) Update(_ context.Context, record *T) error {
	if !s.col.Replace((*record).GetID(), (*record).GetTenantID(), *record) {
		return repository.ErrNotFound
	}
	return nil
}

func (s *store[T]) Delete(_ context.Context, tenantID, id string) error {
	if !s.col.Remove(id, tenantID) {
		return repository.ErrNotFound
	}
	return nil
}

type memoryRepository struct {
	tasks          *store[domain.Task]
	orders         *store[domain.Order]
	menuItems      *store[domain.MenuItem]
	purchaseOrders *store[domain.PurchaseOrder]
	invoices       *store[domain.Invoice]
	accounts       *store[domain.Account]
	transactions   *store[domain.Transaction]
	employees      *store[domain.Employee]
	attendance     *store[domain.AttendanceRecord]
	tenants        *tenantStore
}

// NewRepository creates an empty in-memory repository.
func NewRepository() repository.Repository {
	return &memoryRepository{
		tasks:          newStore[domain.Task](),
		orders:         newStore[domain.Order](),
		menuItems:      newStore[domain.MenuItem](),
		purchaseOrders: newStore[domain.PurchaseOrder](),
		invoices:       newStore[domain.Invoice](),
		accounts:       newStore[domain.Account](),
		transactions:   newStore[domain.Transaction](),
		employees:      newStore[domain.Employee](),
		attendance:     newStore[domain.AttendanceRecord](),
		tenants:        newTenantStore(),
	}
}

func (r *memoryRepository) Tasks() repository.TaskRepository                   { return r.tasks }
func (r *memoryRepository) Orders() repository.OrderRepository                 { return r.orders }
func (r *memoryRepository) MenuItems() repository.MenuItemRepository           { return r.menuItems }
func (r *memoryRepository) PurchaseOrders() repository.PurchaseOrderRepository { return r.purchaseOrders }
func (r *memoryRepository) Invoices() repository.InvoiceRepository             { return r.invoices }
func (r *memoryRepository) Accounts() repository.AccountRepository             { return r.accounts }
func (r *memoryRepository) Transactions() repository.TransactionRepository     { return r.transactions }
func (r *memoryRepository) Employees() repository.EmployeeRepository           { return r.employees }
func (r *memoryRepository) Attendance() repository.AttendanceRepository        { return r.attendance }
func (r *memoryRepository) Tenants() repository.TenantRepository               { return r.tenants }
