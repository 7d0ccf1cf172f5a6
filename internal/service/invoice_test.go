package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/repository"
	"github.com/hotelops/hotel-ops-api/internal/repository/memory"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    repository.Repository
	service *InvoiceService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewRepository()
	s.service = NewInvoiceService(s.repo)
}

func (s *InvoiceServiceTestSuite) createInvoice(tenantID string) *domain.Invoice {
	invoice, err := s.service.Create(s.ctx, tenantID, dto.CreateInvoiceRequest{
		GuestID: "guest1",
		Items: []dto.CreateInvoiceItemRequest{
			{Description: "Deluxe room, 2 nights", Quantity: 2, UnitPrice: 850000},
		},
	})
	s.Require().NoError(err)
	return invoice
}

func (s *InvoiceServiceTestSuite) issueInvoice(tenantID string) *domain.Invoice {
	invoice := s.createInvoice(tenantID)
	issued, err := s.service.UpdateStatus(s.ctx, tenantID, invoice.ID, domain.InvoiceIssued)
	s.Require().NoError(err)
	return issued
}

func (s *InvoiceServiceTestSuite) TestCreate_DefaultsDueDateAndBalance() {
	invoice := s.createInvoice("tenant1")

	s.Equal(fmt.Sprintf("INV-%d-0001", time.Now().Year()), invoice.InvoiceNumber)
	s.Equal(domain.InvoiceDraft, invoice.Status)
	s.Equal(int64(1700000), invoice.Subtotal)
	s.Equal(int64(306000), invoice.TaxAmount) // 18%
	s.Equal(int64(2006000), invoice.TotalAmount)
	s.Equal(invoice.TotalAmount, invoice.Balance)
	s.Equal(int64(0), invoice.PaidAmount)
	s.Equal(time.Now().Format(dateLayout), invoice.IssueDate)
	s.Equal(time.Now().AddDate(0, 0, defaultInvoiceTermDays).Format(dateLayout), invoice.DueDate)
}

func (s *InvoiceServiceTestSuite) TestCreate_BadDueDateRejected() {
	_, err := s.service.Create(s.ctx, "tenant1", dto.CreateInvoiceRequest{
		GuestID: "guest1",
		DueDate: "15-09-2026",
		Items:   []dto.CreateInvoiceItemRequest{{Description: "Laundry", Quantity: 1, UnitPrice: 5000}},
	})
	s.True(IsValidationError(err))
}

func (s *InvoiceServiceTestSuite) TestRecordPayment_PartialThenPaid() {
	invoice := s.issueInvoice("tenant1")

	partial, err := s.service.RecordPayment(s.ctx, "tenant1", invoice.ID, 1000000)
	s.NoError(err)
	s.Equal(int64(1000000), partial.PaidAmount)
	s.Equal(int64(1006000), partial.Balance)
	s.Equal(domain.InvoiceIssued, partial.Status)

	paid, err := s.service.RecordPayment(s.ctx, "tenant1", invoice.ID, 1006000)
	s.NoError(err)
	s.Equal(int64(0), paid.Balance)
	s.Equal(domain.InvoicePaid, paid.Status)
}

func (s *InvoiceServiceTestSuite) TestRecordPayment_OverpaymentRejected() {
	invoice := s.issueInvoice("tenant1")

	_, err := s.service.RecordPayment(s.ctx, "tenant1", invoice.ID, invoice.Balance+1)
	s.True(IsValidationError(err))
}

func (s *InvoiceServiceTestSuite) TestRecordPayment_NonPositiveRejected() {
	invoice := s.issueInvoice("tenant1")

	_, err := s.service.RecordPayment(s.ctx, "tenant1", invoice.ID, 0)
	s.True(IsValidationError(err))
}

func (s *InvoiceServiceTestSuite) TestRecordPayment_DraftCannotAcceptPayments() {
	invoice := s.createInvoice("tenant1")

	_, err := s.service.RecordPayment(s.ctx, "tenant1", invoice.ID, 100)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *InvoiceServiceTestSuite) TestRecordPayment_PaidInvoiceIsClosed() {
	invoice := s.issueInvoice("tenant1")
	_, err := s.service.RecordPayment(s.ctx, "tenant1", invoice.ID, invoice.Balance)
	s.Require().NoError(err)

	_, err = s.service.RecordPayment(s.ctx, "tenant1", invoice.ID, 100)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *InvoiceServiceTestSuite) TestUpdateStatus_OverdueLifecycle() {
	invoice := s.issueInvoice("tenant1")

	_, err := s.service.UpdateStatus(s.ctx, "tenant1", invoice.ID, domain.InvoiceSent)
	s.Require().NoError(err)
	overdue, err := s.service.UpdateStatus(s.ctx, "tenant1", invoice.ID, domain.InvoiceOverdue)
	s.NoError(err)
	s.Equal(domain.InvoiceOverdue, overdue.Status)

	// An overdue invoice can still be settled.
	paid, err := s.service.RecordPayment(s.ctx, "tenant1", invoice.ID, overdue.Balance)
	s.NoError(err)
	s.Equal(domain.InvoicePaid, paid.Status)
}

func (s *InvoiceServiceTestSuite) TestUpdateStatus_DraftCannotGoOverdue() {
	invoice := s.createInvoice("tenant1")

	_, err := s.service.UpdateStatus(s.ctx, "tenant1", invoice.ID, domain.InvoiceOverdue)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *InvoiceServiceTestSuite) TestDelete_DraftOnly() {
	draft := s.createInvoice("tenant1")
	s.NoError(s.service.Delete(s.ctx, "tenant1", draft.ID))

	issued := s.issueInvoice("tenant1")
	s.ErrorIs(s.service.Delete(s.ctx, "tenant1", issued.ID), ErrInvalidState)
}

func (s *InvoiceServiceTestSuite) TestGetAll_ScopedAndFiltered() {
	s.createInvoice("tenant1")
	s.issueInvoice("tenant1")
	s.createInvoice("tenant2")

	page, err := s.service.GetAll(s.ctx, "tenant1", domain.InvoiceFilter{Status: domain.InvoiceIssued})
	s.NoError(err)
	s.Equal(int64(1), page.Total)

	page, err = s.service.GetAll(s.ctx, "tenant1", domain.InvoiceFilter{})
	s.NoError(err)
	s.Equal(int64(2), page.Total)
}

func (s *InvoiceServiceTestSuite) TestRequiresTenantContext() {
	_, err := s.service.GetByID(s.ctx, "", "any")
	s.ErrorIs(err, ErrMissingTenantContext)
}
