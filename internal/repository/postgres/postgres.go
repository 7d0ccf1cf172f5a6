// Package postgres implements the repository contracts on PostgreSQL through
// gorm, with separate writer and reader connections. Every query carries a
// tenant_id predicate; the service layer never sees an unscoped row.
package postgres

import (
	"github.com/hotelops/hotel-ops-api/internal/config"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/repository"
)

type postgresRepository struct {
	tasks          *entityStore[domain.Task]
	orders         *entityStore[domain.Order]
	menuItems      *entityStore[domain.MenuItem]
	purchaseOrders *entityStore[domain.PurchaseOrder]
	invoices       *entityStore[domain.Invoice]
	accounts       *entityStore[domain.Account]
	transactions   *entityStore[domain.Transaction]
	employees      *entityStore[domain.Employee]
	attendance     *entityStore[domain.AttendanceRecord]
	tenants        *TenantRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	writer, reader := dbConnections.Writer, dbConnections.Reader
	return &postgresRepository{
		tasks:          newEntityStore[domain.Task](writer, reader),
		orders:         newEntityStore[domain.Order](writer, reader),
		menuItems:      newEntityStore[domain.MenuItem](writer, reader),
		purchaseOrders: newEntityStore[domain.PurchaseOrder](writer, reader),
		invoices:       newEntityStore[domain.Invoice](writer, reader),
		accounts:       newEntityStore[domain.Account](writer, reader),
		transactions:   newEntityStore[domain.Transaction](writer, reader),
		employees:      newEntityStore[domain.Employee](writer, reader),
		attendance:     newEntityStore[domain.AttendanceRecord](writer, reader),
		tenants:        NewTenantRepository(writer, reader),
	}
}

func (r *postgresRepository) Tasks() repository.TaskRepository                   { return r.tasks }
func (r *postgresRepository) Orders() repository.OrderRepository                 { return r.orders }
func (r *postgresRepository) MenuItems() repository.MenuItemRepository           { return r.menuItems }
func (r *postgresRepository) PurchaseOrders() repository.PurchaseOrderRepository { return r.purchaseOrders }
func (r *postgresRepository) Invoices() repository.InvoiceRepository             { return r.invoices }
func (r *postgresRepository) Accounts() repository.AccountRepository             { return r.accounts }
func (r *postgresRepository) Transactions() repository.TransactionRepository     { return r.transactions }
func (r *postgresRepository) Employees() repository.EmployeeRepository           { return r.employees }
func (r *postgresRepository) Attendance() repository.AttendanceRepository        { return r.attendance }
func (r *postgresRepository) Tenants() repository.TenantRepository               { return r.tenants }
