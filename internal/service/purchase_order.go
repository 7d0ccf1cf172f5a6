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

type PurchaseOrderService struct {
	repo repository.Repository
}

func NewPurchaseOrderService(repo repository.Repository) *PurchaseOrderService {
	return &PurchaseOrderService{repo: repo}
}

// GetAll lists the tenant's purchase orders, newest first.
func (s *PurchaseOrderService) GetAll(ctx context.Context, tenantID string, filter domain.PurchaseOrderFilter) (tenancy.Page[domain.PurchaseOrder], error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return tenancy.Page[domain.PurchaseOrder]{}, err
	}

	orders, err := s.repo.PurchaseOrders().List(ctx, tenantID)
	if err != nil {
		return tenancy.Page[domain.PurchaseOrder]{}, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	filtered := orders[:0:0]
	for _, po := range orders {
		if filter.Status != "" && po.Status != filter.Status {
			continue
		}
		if filter.VendorID != "" && po.VendorID != filter.VendorID {
			continue
		}
		created := po.CreatedAt.Format(dateLayout)
		if filter.StartDate != "" && created < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && created > filter.EndDate {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(po.PONumber), strings.ToLower(filter.Search)) {
			continue
		}
		filtered = append(filtered, po)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return tenancy.Paginate(filtered, filter.Page, filter.PageSize), nil
}

func (s *PurchaseOrderService) GetByID(ctx context.Context, tenantID, id string) (*domain.PurchaseOrder, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	return s.repo.PurchaseOrders().GetByID(ctx, tenantID, id)
}

// Create opens a new purchase order in draft.
func (s *PurchaseOrderService) Create(ctx context.Context, tenantID string, req dto.CreatePurchaseOrderRequest, createdBy string) (*domain.PurchaseOrder, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	if req.ExpectedDeliveryDate != "" {
		if _, err := time.Parse(dateLayout, req.ExpectedDeliveryDate); err != nil {
			return nil, newValidationError("expected_delivery_date", "must be a YYYY-MM-DD date")
		}
	}

	items, subtotal := buildPurchaseOrderItems(req.Items)

	existing, err := s.repo.PurchaseOrders().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	now := time.Now()
	tax := subtotal * taxRatePercent / 100
	po := &domain.PurchaseOrder{
		ID:                   uuid.New().String(),
		TenantID:             tenantID,
		PONumber:             nextNumber(fmt.Sprintf("PO-%d", now.Year()), purchaseOrderNumbers(existing)),
		VendorID:             req.VendorID,
		Status:               domain.PODraft,
		Items:                items,
		Subtotal:             subtotal,
		TaxAmount:            tax,
		TotalAmount:          subtotal + tax,
		Currency:             "INR",
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		DeliveryAddress:      req.DeliveryAddress,
		Notes:                req.Notes,
		CreatedBy:            createdBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.PurchaseOrders().Create(ctx, po); err != nil {
		return nil, fmt.Errorf("failed to create purchase order: %w", err)
	}
	return po, nil
}

func buildPurchaseOrderItems(lines []dto.CreatePurchaseOrderItemRequest) ([]domain.PurchaseOrderItem, int64) {
	items := make([]domain.PurchaseOrderItem, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		total := line.UnitPrice * int64(line.Quantity)
		items = append(items, domain.PurchaseOrderItem{
			ID:          uuid.New().String(),
			ItemID:      line.ItemID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  total,
		})
		subtotal += total
	}
	return items, subtotal
}

func purchaseOrderNumbers(orders []domain.PurchaseOrder) []string {
	numbers := make([]string, len(orders))
	for i, po := range orders {
		numbers[i] = po.PONumber
	}
	return numbers
}

// Update edits an order that has not yet been sent to the vendor. Replacing
// the item list reprices the order.
func (s *PurchaseOrderService) Update(ctx context.Context, tenantID, id string, req dto.UpdatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	po, err := s.repo.PurchaseOrders().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up purchase order: %w", err)
	}
	if po == nil {
		return nil, ErrNotFound
	}
	if po.Status != domain.PODraft && po.Status != domain.POPendingApproval {
		return nil, fmt.Errorf("%w: purchase order in status %s cannot be edited", ErrInvalidState, po.Status)
	}

	if len(req.Items) > 0 {
		items, subtotal := buildPurchaseOrderItems(req.Items)
		po.Items = items
		po.Subtotal = subtotal
		po.TaxAmount = subtotal * taxRatePercent / 100
		po.TotalAmount = po.Subtotal + po.TaxAmount + po.ShippingCost
	}
	if req.ExpectedDeliveryDate != nil {
		if *req.ExpectedDeliveryDate != "" {
			if _, err := time.Parse(dateLayout, *req.ExpectedDeliveryDate); err != nil {
				return nil, newValidationError("expected_delivery_date", "must be a YYYY-MM-DD date")
			}
		}
		po.ExpectedDeliveryDate = *req.ExpectedDeliveryDate
	}
	if req.DeliveryAddress != nil {
		po.DeliveryAddress = *req.DeliveryAddress
	}
	if req.Notes != nil {
		po.Notes = *req.Notes
	}
	po.UpdatedAt = time.Now()

	if err := s.repo.PurchaseOrders().Update(ctx, po); err != nil {
		return nil, fmt.Errorf("failed to update purchase order: %w", err)
	}
	return po, nil
}

// UpdateStatus moves a purchase order along its approval and fulfilment
// lifecycle. Approval stamps who approved and when; sending stamps sentAt.
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, tenantID, id string, status domain.PurchaseOrderStatus, actor string) (*domain.PurchaseOrder, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	po, err := s.repo.PurchaseOrders().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up purchase order: %w", err)
	}
	if po == nil {
		return nil, ErrNotFound
	}
	if !domain.CanTransitionPurchaseOrder(po.Status, status) {
		return nil, fmt.Errorf("%w: purchase order cannot move from %s to %s", ErrInvalidState, po.Status, status)
	}

	now := time.Now()
	po.Status = status
	po.UpdatedAt = now
	switch status {
	case domain.POApproved:
		po.ApprovedBy = actor
		po.ApprovedAt = &now
	case domain.POSent:
		po.SentAt = &now
	}

	if err := s.repo.PurchaseOrders().Update(ctx, po); err != nil {
		return nil, fmt.Errorf("failed to update purchase order: %w", err)
	}
	return po, nil
}

// Delete removes a purchase order. Only drafts may be deleted; anything past
// draft has been seen by other people and must be cancelled instead.
func (s *PurchaseOrderService) Delete(ctx context.Context, tenantID, id string) error {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return err
	}

	po, err := s.repo.PurchaseOrders().GetByID(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to look up purchase order: %w", err)
	}
	if po == nil {
		return ErrNotFound
	}
	if po.Status != domain.PODraft {
		return fmt.Errorf("%w: only draft purchase orders can be deleted", ErrInvalidState)
	}
	if err := s.repo.PurchaseOrders().Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("failed to delete purchase order: %w", err)
	}
	return nil
}

// GetStats summarizes the tenant's purchase orders.
func (s *PurchaseOrderService) GetStats(ctx context.Context, tenantID string) (*domain.PurchaseOrderStats, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	orders, err := s.repo.PurchaseOrders().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	stats := &domain.PurchaseOrderStats{Total: int64(len(orders))}
	for _, po := range orders {
		switch po.Status {
		case domain.PODraft:
			stats.Draft++
		case domain.POPendingApproval:
			stats.PendingApproval++
		case domain.POApproved:
			stats.Approved++
		case domain.POSent:
			stats.Sent++
		case domain.POReceived:
			stats.Received++
		}
		if po.Status != domain.POCancelled {
			stats.TotalValue += po.TotalAmount
		}
		if po.Status != domain.POCancelled && po.Status != domain.POReceived {
			stats.PendingValue += po.TotalAmount
		}
	}
	return stats, nil
}
