package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/repository"
	"github.com/hotelops/hotel-ops-api/internal/repository/memory"
)

type TenantServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    repository.Repository
	service *TenantService
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewRepository()
	s.service = NewTenantService(s.repo)
}

func (s *TenantServiceTestSuite) TestCreate() {
	resp, err := s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "Grand Palace Hotel", RateLimit: 500})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Grand Palace Hotel", resp.Name)
	s.Equal(500, resp.RateLimit)
}

func (s *TenantServiceTestSuite) TestGetByID() {
	created, err := s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "Grand Palace Hotel"})
	s.Require().NoError(err)

	tenant, err := s.service.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Require().NotNil(tenant)
	s.Equal("Grand Palace Hotel", tenant.Name)
}

func (s *TenantServiceTestSuite) TestUpdate() {
	created, err := s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "Grand Palace Hotel"})
	s.Require().NoError(err)

	tenant, err := s.service.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	tenant.Name = "Grand Palace Hotel & Spa"
	s.NoError(s.service.Update(s.ctx, tenant))

	reloaded, err := s.service.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("Grand Palace Hotel & Spa", reloaded.Name)
}

func (s *TenantServiceTestSuite) TestDelete() {
	created, err := s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "Grand Palace Hotel"})
	s.Require().NoError(err)

	s.NoError(s.service.Delete(s.ctx, created.ID))

	tenant, err := s.service.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Nil(tenant)
}

func (s *TenantServiceTestSuite) TestList() {
	_, err := s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "Grand Palace Hotel"})
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "Seaside Resort"})
	s.Require().NoError(err)

	tenants, err := s.service.List(s.ctx)
	s.NoError(err)
	s.Len(tenants, 2)
}
