package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/middleware"
	"github.com/hotelops/hotel-ops-api/internal/service"
	"github.com/hotelops/hotel-ops-api/internal/service/pubsub"
	"github.com/hotelops/hotel-ops-api/pkg/logger"
)

type Server struct {
	tenant        *TenantHandler
	task          *TaskHandler
	order         *OrderHandler
	menu          *MenuHandler
	purchaseOrder *PurchaseOrderHandler
	invoice       *InvoiceHandler
	account       *AccountHandler
	employee      *EmployeeHandler
	websocket     *WebSocketHandler
	auth          *middleware.AuthMiddleware
	rateLimit     *middleware.RateLimitMiddleware
	validation    *middleware.ValidationMiddleware
}

func NewServer(
	tenantService *service.TenantService,
	taskService *service.TaskService,
	orderService *service.OrderService,
	menuService *service.MenuService,
	purchaseOrderService *service.PurchaseOrderService,
	invoiceService *service.InvoiceService,
	accountService *service.AccountService,
	employeeService *service.EmployeeService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		tenant:        NewTenantHandler(tenantService),
		task:          NewTaskHandler(taskService),
		order:         NewOrderHandler(orderService),
		menu:          NewMenuHandler(menuService),
		purchaseOrder: NewPurchaseOrderHandler(purchaseOrderService),
		invoice:       NewInvoiceHandler(invoiceService),
		account:       NewAccountHandler(accountService),
		employee:      NewEmployeeHandler(employeeService),
		websocket:     NewWebSocketHandler(logger, pubsub),
		auth:          auth,
		rateLimit:     rateLimit,
		validation:    validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json", "text/plain"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	authed := []gin.HandlerFunc{s.auth.JWTAuth(), s.rateLimit.TenantRateLimit()}

	{
		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit(), s.auth.RequireRole(domain.RoleAdmin))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
		}

		tasks := api.Group("/tasks", authed...)
		{
			tasks.GET("", s.task.ListTasks)
			tasks.POST("", s.task.CreateTask)
			tasks.GET("/stats", s.task.GetTaskStats)
			tasks.GET("/:id", s.task.GetTask)
			tasks.PUT("/:id", s.task.UpdateTask)
			tasks.PATCH("/:id/status", s.task.UpdateTaskStatus)
			tasks.PATCH("/:id/assign", s.task.AssignTask)
			tasks.DELETE("/:id", s.auth.RequireRole(domain.RoleManager), s.task.DeleteTask)
		}

		orders := api.Group("/orders", authed...)
		{
			orders.GET("", s.order.ListOrders)
			orders.POST("", s.order.CreateOrder)
			orders.GET("/open", s.order.ListOpenOrders)
			orders.GET("/stats", s.order.GetOrderStats)
			orders.GET("/stream", s.websocket.HandleWebSocket)
			orders.GET("/:id", s.order.GetOrder)
			orders.PATCH("/:id/status", s.order.UpdateOrderStatus)
		}

		menu := api.Group("/menu-items", authed...)
		{
			menu.GET("", s.menu.ListMenuItems)
			menu.POST("", s.auth.RequireRole(domain.RoleManager), s.menu.CreateMenuItem)
			menu.GET("/:id", s.menu.GetMenuItem)
			menu.PUT("/:id", s.auth.RequireRole(domain.RoleManager), s.menu.UpdateMenuItem)
			menu.DELETE("/:id", s.auth.RequireRole(domain.RoleManager), s.menu.DeleteMenuItem)
		}

		purchaseOrders := api.Group("/purchase-orders", authed...)
		{
			purchaseOrders.GET("", s.purchaseOrder.ListPurchaseOrders)
			purchaseOrders.POST("", s.purchaseOrder.CreatePurchaseOrder)
			purchaseOrders.GET("/stats", s.purchaseOrder.GetPurchaseOrderStats)
			purchaseOrders.GET("/:id", s.purchaseOrder.GetPurchaseOrder)
			purchaseOrders.PUT("/:id", s.purchaseOrder.UpdatePurchaseOrder)
			purchaseOrders.PATCH("/:id/status", s.auth.RequireRole(domain.RoleManager), s.purchaseOrder.UpdatePurchaseOrderStatus)
			purchaseOrders.DELETE("/:id", s.purchaseOrder.DeletePurchaseOrder)
		}

		invoices := api.Group("/invoices", authed...)
		{
			invoices.GET("", s.invoice.ListInvoices)
			invoices.POST("", s.invoice.CreateInvoice)
			invoices.GET("/:id", s.invoice.GetInvoice)
			invoices.POST("/:id/payments", s.invoice.RecordPayment)
			invoices.PATCH("/:id/status", s.invoice.UpdateInvoiceStatus)
			invoices.DELETE("/:id", s.auth.RequireRole(domain.RoleManager), s.invoice.DeleteInvoice)
		}

		accounts := api.Group("/accounts", authed...)
		{
			accounts.GET("", s.account.ListAccounts)
			accounts.POST("", s.auth.RequireRole(domain.RoleManager), s.account.CreateAccount)
			accounts.GET("/:id", s.account.GetAccount)
			accounts.PUT("/:id", s.auth.RequireRole(domain.RoleManager), s.account.UpdateAccount)
			accounts.DELETE("/:id", s.auth.RequireRole(domain.RoleAdmin), s.account.DeleteAccount)
		}

		transactions := api.Group("/transactions", authed...)
		{
			transactions.GET("", s.account.ListTransactions)
			transactions.POST("", s.auth.RequireRole(domain.RoleManager), s.account.CreateTransaction)
		}

		employees := api.Group("/employees", authed...)
		{
			employees.GET("", s.employee.ListEmployees)
			employees.POST("", s.auth.RequireRole(domain.RoleManager), s.employee.CreateEmployee)
			employees.GET("/:id", s.employee.GetEmployee)
			employees.PUT("/:id", s.auth.RequireRole(domain.RoleManager), s.employee.UpdateEmployee)
			employees.PATCH("/:id/status", s.auth.RequireRole(domain.RoleManager), s.employee.UpdateEmployeeStatus)
		}

		attendance := api.Group("/attendance", authed...)
		{
			attendance.GET("", s.employee.ListAttendance)
			attendance.POST("/clock-in", s.employee.ClockIn)
			attendance.POST("/clock-out", s.employee.ClockOut)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting order events
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for shutdown wiring
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
