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

type PurchaseOrderServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    repository.Repository
	service *PurchaseOrderService
}

func TestPurchaseOrderService(t *testing.T) {
	suite.Run(t, new(PurchaseOrderServiceTestSuite))
}

func (s *PurchaseOrderServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewRepository()
	s.service = NewPurchaseOrderService(s.repo)
}

func (s *PurchaseOrderServiceTestSuite) createPO(tenantID string) *domain.PurchaseOrder {
	po, err := s.service.Create(s.ctx, tenantID, dto.CreatePurchaseOrderRequest{
		VendorID: "vendor1",
		Items: []dto.CreatePurchaseOrderItemRequest{
			{Description: "Bath towels", Quantity: 50, UnitPrice: 35000},
			{Description: "Hand towels", Quantity: 100, UnitPrice: 12000},
		},
	}, "user1")
	s.Require().NoError(err)
	return po
}

func (s *PurchaseOrderServiceTestSuite) TestCreate_PricesAndNumbers() {
	po := s.createPO("tenant1")

	s.Equal(fmt.Sprintf("PO-%d-0001", time.Now().Year()), po.PONumber)
	s.Equal(domain.PODraft, po.Status)
	s.Equal(int64(2950000), po.Subtotal)
	s.Equal(int64(531000), po.TaxAmount) // 18%
	s.Equal(int64(3481000), po.TotalAmount)
	s.Equal("INR", po.Currency)
	s.Equal("user1", po.CreatedBy)

	second := s.createPO("tenant1")
	s.Equal(fmt.Sprintf("PO-%d-0002", time.Now().Year()), second.PONumber)
}

func (s *PurchaseOrderServiceTestSuite) TestCreate_BadDeliveryDateRejected() {
	_, err := s.service.Create(s.ctx, "tenant1", dto.CreatePurchaseOrderRequest{
		VendorID:             "vendor1",
		ExpectedDeliveryDate: "next tuesday",
		Items:                []dto.CreatePurchaseOrderItemRequest{{Description: "Soap", Quantity: 1, UnitPrice: 100}},
	}, "user1")
	s.True(IsValidationError(err))
}

func (s *PurchaseOrderServiceTestSuite) TestUpdate_RepricesReplacedItems() {
	po := s.createPO("tenant1")

	updated, err := s.service.Update(s.ctx, "tenant1", po.ID, dto.UpdatePurchaseOrderRequest{
		Items: []dto.CreatePurchaseOrderItemRequest{
			{Description: "Bath towels", Quantity: 10, UnitPrice: 35000},
		},
	})
	s.NoError(err)
	s.Equal(int64(350000), updated.Subtotal)
	s.Equal(int64(63000), updated.TaxAmount)
	s.Equal(int64(413000), updated.TotalAmount)
}

func (s *PurchaseOrderServiceTestSuite) TestUpdate_BlockedAfterApproval() {
	po := s.createPO("tenant1")
	_, err := s.service.UpdateStatus(s.ctx, "tenant1", po.ID, domain.POPendingApproval, "user1")
	s.Require().NoError(err)
	_, err = s.service.UpdateStatus(s.ctx, "tenant1", po.ID, domain.POApproved, "manager1")
	s.Require().NoError(err)

	notes := "rush order"
	_, err = s.service.Update(s.ctx, "tenant1", po.ID, dto.UpdatePurchaseOrderRequest{Notes: &notes})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *PurchaseOrderServiceTestSuite) TestUpdateStatus_ApprovalAndSendStamps() {
	po := s.createPO("tenant1")

	_, err := s.service.UpdateStatus(s.ctx, "tenant1", po.ID, domain.POPendingApproval, "user1")
	s.Require().NoError(err)

	approved, err := s.service.UpdateStatus(s.ctx, "tenant1", po.ID, domain.POApproved, "manager1")
	s.NoError(err)
	s.Equal("manager1", approved.ApprovedBy)
	s.NotNil(approved.ApprovedAt)

	sent, err := s.service.UpdateStatus(s.ctx, "tenant1", po.ID, domain.POSent, "manager1")
	s.NoError(err)
	s.NotNil(sent.SentAt)
}

func (s *PurchaseOrderServiceTestSuite) TestUpdateStatus_DraftCannotSkipApproval() {
	po := s.createPO("tenant1")

	_, err := s.service.UpdateStatus(s.ctx, "tenant1", po.ID, domain.POSent, "user1")
	s.ErrorIs(err, ErrInvalidState)
}

func (s *PurchaseOrderServiceTestSuite) TestUpdateStatus_RejectionReturnsToDraft() {
	po := s.createPO("tenant1")
	_, err := s.service.UpdateStatus(s.ctx, "tenant1", po.ID, domain.POPendingApproval, "user1")
	s.Require().NoError(err)

	back, err := s.service.UpdateStatus(s.ctx, "tenant1", po.ID, domain.PODraft, "manager1")
	s.NoError(err)
	s.Equal(domain.PODraft, back.Status)
}

func (s *PurchaseOrderServiceTestSuite) TestDelete_DraftOnly() {
	draft := s.createPO("tenant1")
	s.NoError(s.service.Delete(s.ctx, "tenant1", draft.ID))

	submitted := s.createPO("tenant1")
	_, err := s.service.UpdateStatus(s.ctx, "tenant1", submitted.ID, domain.POPendingApproval, "user1")
	s.Require().NoError(err)
	s.ErrorIs(s.service.Delete(s.ctx, "tenant1", submitted.ID), ErrInvalidState)
}

func (s *PurchaseOrderServiceTestSuite) TestGetAll_FiltersByStatus() {
	s.createPO("tenant1")
	submitted := s.createPO("tenant1")
	_, err := s.service.UpdateStatus(s.ctx, "tenant1", submitted.ID, domain.POPendingApproval, "user1")
	s.Require().NoError(err)
	s.createPO("tenant2")

	page, err := s.service.GetAll(s.ctx, "tenant1", domain.PurchaseOrderFilter{Status: domain.PODraft})
	s.NoError(err)
	s.Equal(int64(1), page.Total)
	s.Equal(domain.PODraft, page.Items[0].Status)
}

func (s *PurchaseOrderServiceTestSuite) TestGetStats() {
	s.createPO("tenant1")
	cancelled := s.createPO("tenant1")
	_, err := s.service.UpdateStatus(s.ctx, "tenant1", cancelled.ID, domain.POCancelled, "user1")
	s.Require().NoError(err)

	stats, err := s.service.GetStats(s.ctx, "tenant1")
	s.NoError(err)
	s.Equal(int64(2), stats.Total)
	s.Equal(int64(1), stats.Draft)
	s.Equal(int64(3481000), stats.TotalValue)
	s.Equal(int64(3481000), stats.PendingValue)
}

func (s *PurchaseOrderServiceTestSuite) TestRequiresTenantContext() {
	_, err := s.service.GetStats(s.ctx, "")
	s.ErrorIs(err, ErrMissingTenantContext)
}
