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

const defaultInvoiceTermDays = 15

type InvoiceService struct {
	repo repository.Repository
}

func NewInvoiceService(repo repository.Repository) *InvoiceService {
	return &InvoiceService{repo: repo}
}

// GetAll lists the tenant's invoices, newest first.
func (s *InvoiceService) GetAll(ctx context.Context, tenantID string, filter domain.InvoiceFilter) (tenancy.Page[domain.Invoice], error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return tenancy.Page[domain.Invoice]{}, err
	}

	invoices, err := s.repo.Invoices().List(ctx, tenantID)
	if err != nil {
		return tenancy.Page[domain.Invoice]{}, fmt.Errorf("failed to list invoices: %w", err)
	}

	filtered := invoices[:0:0]
	for _, inv := range invoices {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.GuestID != "" && inv.GuestID != filter.GuestID {
			continue
		}
		if filter.StartDate != "" && inv.IssueDate != "" && inv.IssueDate < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && inv.IssueDate != "" && inv.IssueDate > filter.EndDate {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(inv.InvoiceNumber), search) &&
				!strings.Contains(strings.ToLower(inv.CompanyName), search) {
				continue
			}
		}
		filtered = append(filtered, inv)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return tenancy.Paginate(filtered, filter.Page, filter.PageSize), nil
}

func (s *InvoiceService) GetByID(ctx context.Context, tenantID, id string) (*domain.Invoice, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	return s.repo.Invoices().GetByID(ctx, tenantID, id)
}

// Create issues a draft invoice for a guest. The due date defaults to the
// standard payment term when not given.
func (s *InvoiceService) Create(ctx context.Context, tenantID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	now := time.Now()
	dueDate := req.DueDate
	if dueDate == "" {
		dueDate = now.AddDate(0, 0, defaultInvoiceTermDays).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, dueDate); err != nil {
		return nil, newValidationError("due_date", "must be a YYYY-MM-DD date")
	}

	items := make([]domain.InvoiceItem, 0, len(req.Items))
	var subtotal int64
	for _, line := range req.Items {
		amount := line.UnitPrice * int64(line.Quantity)
		items = append(items, domain.InvoiceItem{
			ID:          uuid.New().String(),
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      amount,
		})
		subtotal += amount
	}

	existing, err := s.repo.Invoices().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	tax := subtotal * taxRatePercent / 100
	invoice := &domain.Invoice{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		InvoiceNumber: nextNumber(fmt.Sprintf("INV-%d", now.Year()), invoiceNumbers(existing)),
		GuestID:       req.GuestID,
		CompanyName:   req.CompanyName,
		Status:        domain.InvoiceDraft,
		IssueDate:     now.Format(dateLayout),
		DueDate:       dueDate,
		Items:         items,
		Subtotal:      subtotal,
		TaxAmount:     tax,
		TotalAmount:   subtotal + tax,
		Balance:       subtotal + tax,
		Currency:      "INR",
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Invoices().Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice, nil
}

func invoiceNumbers(invoices []domain.Invoice) []string {
	numbers := make([]string, len(invoices))
	for i, inv := range invoices {
		numbers[i] = inv.InvoiceNumber
	}
	return numbers
}

// RecordPayment applies a payment against the invoice balance. Paying the
// balance down to zero marks the invoice paid; overpaying is rejected.
func (s *InvoiceService) RecordPayment(ctx context.Context, tenantID, id string, amount int64) (*domain.Invoice, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	invoice, err := s.repo.Invoices().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrNotFound
	}
	if invoice.Status == domain.InvoiceDraft || invoice.Status == domain.InvoiceCancelled || invoice.Status == domain.InvoicePaid {
		return nil, fmt.Errorf("%w: invoice in status %s cannot accept payments", ErrInvalidState, invoice.Status)
	}
	if amount <= 0 {
		return nil, newValidationError("amount", "must be positive")
	}
	if amount > invoice.Balance {
		return nil, newValidationError("amount", "exceeds outstanding balance")
	}

	invoice.PaidAmount += amount
	invoice.Balance -= amount
	if invoice.Balance == 0 {
		invoice.Status = domain.InvoicePaid
	}
	invoice.UpdatedAt = time.Now()

	if err := s.repo.Invoices().Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return invoice, nil
}

func (s *InvoiceService) UpdateStatus(ctx context.Context, tenantID, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	invoice, err := s.repo.Invoices().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrNotFound
	}
	if !domain.CanTransitionInvoice(invoice.Status, status) {
		return nil, fmt.Errorf("%w: invoice cannot move from %s to %s", ErrInvalidState, invoice.Status, status)
	}

	invoice.Status = status
	invoice.UpdatedAt = time.Now()

	if err := s.repo.Invoices().Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return invoice, nil
}

// Delete removes a draft invoice. Issued invoices are part of the financial
// record and can only be cancelled.
func (s *InvoiceService) Delete(ctx context.Context, tenantID, id string) error {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return err
	}

	invoice, err := s.repo.Invoices().GetByID(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to look up invoice: %w", err)
	}
	if invoice == nil {
		return ErrNotFound
	}
	if invoice.Status != domain.InvoiceDraft {
		return fmt.Errorf("%w: only draft invoices can be deleted", ErrInvalidState)
	}
	if err := s.repo.Invoices().Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}
