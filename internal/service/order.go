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
	"github.com/hotelops/hotel-ops-api/pkg/logger"
)

const (
	taxRatePercent       = 18
	serviceChargePercent = 5
)

// OrderBroadcaster delivers order events to live consumers such as the
// kitchen display. Publishing is best effort; a failed publish never fails
// the order operation itself.
type OrderBroadcaster interface {
	Publish(ctx context.Context, event dto.OrderEvent) error
}

type OrderService struct {
	repo        repository.Repository
	broadcaster OrderBroadcaster
	logger      *logger.Logger
}

func NewOrderService(repo repository.Repository, broadcaster OrderBroadcaster, logger *logger.Logger) *OrderService {
	return &OrderService{repo: repo, broadcaster: broadcaster, logger: logger}
}

// GetAll lists the tenant's orders, newest first.
func (s *OrderService) GetAll(ctx context.Context, tenantID string, filter domain.OrderFilter) (tenancy.Page[domain.Order], error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return tenancy.Page[domain.Order]{}, err
	}

	orders, err := s.repo.Orders().List(ctx, tenantID)
	if err != nil {
		return tenancy.Page[domain.Order]{}, fmt.Errorf("failed to list orders: %w", err)
	}

	orders = filterOrders(orders, filter)

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderedAt.After(orders[j].OrderedAt)
	})

	return tenancy.Paginate(orders, filter.Page, filter.PageSize), nil
}

func filterOrders(orders []domain.Order, filter domain.OrderFilter) []domain.Order {
	result := orders[:0:0]
	for _, o := range orders {
		if len(filter.Statuses) > 0 && !containsOrderStatus(filter.Statuses, o.Status) {
			continue
		}
		if filter.Type != "" && o.Type != filter.Type {
			continue
		}
		if filter.GuestID != "" && o.GuestID != filter.GuestID {
			continue
		}
		if filter.RoomID != "" && o.RoomID != filter.RoomID {
			continue
		}
		if filter.Date != "" && o.OrderedAt.Format(dateLayout) != filter.Date {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(o.OrderNumber), search) &&
				!strings.Contains(strings.ToLower(o.TableNumber), search) {
				continue
			}
		}
		result = append(result, o)
	}
	return result
}

func containsOrderStatus(statuses []domain.OrderStatus, status domain.OrderStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// GetOpen returns the orders the kitchen display cares about: everything not
// yet delivered, oldest first.
func (s *OrderService) GetOpen(ctx context.Context, tenantID string) ([]domain.Order, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	orders, err := s.repo.Orders().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	open := orders[:0:0]
	for _, o := range orders {
		if containsOrderStatus(domain.OpenOrderStatuses, o.Status) {
			open = append(open, o)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].OrderedAt.Before(open[j].OrderedAt)
	})
	return open, nil
}

func (s *OrderService) GetByID(ctx context.Context, tenantID, id string) (*domain.Order, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	return s.repo.Orders().GetByID(ctx, tenantID, id)
}

// Create prices and places a new order. Every line item is resolved against
// the tenant's own menu; an item id from another tenant's menu is rejected
// the same way an unknown id is.
func (s *OrderService) Create(ctx context.Context, tenantID string, req dto.CreateOrderRequest, placedBy string) (*domain.Order, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var subtotal int64
	for _, line := range req.Items {
		menuItem, err := s.repo.MenuItems().GetByID(ctx, tenantID, line.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up menu item: %w", err)
		}
		if menuItem == nil {
			return nil, newValidationError("items", fmt.Sprintf("menu item %s does not exist", line.MenuItemID))
		}
		if !menuItem.IsAvailable {
			return nil, newValidationError("items", fmt.Sprintf("menu item %s is not available", menuItem.Name))
		}
		total := menuItem.Price * int64(line.Quantity)
		items = append(items, domain.OrderItem{
			ID:                  uuid.New().String(),
			MenuItemID:          menuItem.ID,
			Name:                menuItem.Name,
			Quantity:            line.Quantity,
			UnitPrice:           menuItem.Price,
			TotalPrice:          total,
			SpecialInstructions: line.SpecialInstructions,
		})
		subtotal += total
	}

	existing, err := s.repo.Orders().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	now := time.Now()
	tax := subtotal * taxRatePercent / 100
	serviceCharge := subtotal * serviceChargePercent / 100
	order := &domain.Order{
		ID:                  uuid.New().String(),
		TenantID:            tenantID,
		OrderNumber:         nextNumber("ORD-"+now.Format("20060102"), orderNumbers(existing)),
		Type:                req.Type,
		Status:              domain.OrderPending,
		GuestID:             req.GuestID,
		RoomID:              req.RoomID,
		TableNumber:         req.TableNumber,
		Items:               items,
		Subtotal:            subtotal,
		TaxAmount:           tax,
		ServiceCharge:       serviceCharge,
		TotalAmount:         subtotal + tax + serviceCharge,
		SpecialInstructions: req.SpecialInstructions,
		PlacedBy:            placedBy,
		OrderedAt:           now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Orders().Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.broadcast(ctx, dto.OrderEvent{
		Type:     dto.OrderEventCreated,
		TenantID: tenantID,
		Order:    *order,
	})
	return order, nil
}

func orderNumbers(orders []domain.Order) []string {
	numbers := make([]string, len(orders))
	for i, o := range orders {
		numbers[i] = o.OrderNumber
	}
	return numbers
}

// UpdateStatus moves an order along its lifecycle, stamping the matching
// timestamp for confirmed, ready and delivered.
func (s *OrderService) UpdateStatus(ctx context.Context, tenantID, id string, status domain.OrderStatus) (*domain.Order, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	order, err := s.repo.Orders().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !domain.CanTransitionOrder(order.Status, status) {
		return nil, fmt.Errorf("%w: order cannot move from %s to %s", ErrInvalidState, order.Status, status)
	}

	now := time.Now()
	order.Status = status
	order.UpdatedAt = now
	switch status {
	case domain.OrderConfirmed:
		order.ConfirmedAt = &now
	case domain.OrderReady:
		order.PreparedAt = &now
	case domain.OrderDelivered:
		order.DeliveredAt = &now
	}

	if err := s.repo.Orders().Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.broadcast(ctx, dto.OrderEvent{
		Type:     dto.OrderEventStatusChanged,
		TenantID: tenantID,
		Order:    *order,
	})
	return order, nil
}

func (s *OrderService) broadcast(ctx context.Context, event dto.OrderEvent) {
	if s.broadcaster == nil {
		return
	}
	if err := s.broadcaster.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.Warnf("Failed to publish order event for tenant %s: %v", event.TenantID, err)
	}
}

// GetStats summarizes today's order activity for the tenant.
func (s *OrderService) GetStats(ctx context.Context, tenantID string) (*domain.OrderStats, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	orders, err := s.repo.Orders().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	today := time.Now().Format(dateLayout)
	stats := &domain.OrderStats{}
	var todaysCount int64
	for _, o := range orders {
		isToday := o.OrderedAt.Format(dateLayout) == today
		if isToday {
			stats.TodaysOrders++
			if o.Status != domain.OrderCancelled {
				stats.TodaysRevenue += o.TotalAmount
				todaysCount++
			}
		}
		if o.Status == domain.OrderPending {
			stats.PendingOrders++
		}
		if o.Type == domain.OrderRoomService && containsOrderStatus(domain.OpenOrderStatuses, o.Status) {
			stats.RoomServiceOpen++
		}
	}
	if todaysCount > 0 {
		stats.AverageOrderValue = stats.TodaysRevenue / todaysCount
	}
	return stats, nil
}
