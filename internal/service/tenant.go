package service

import (
	"context"
	"time"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/repository"
)

// TenantService manages the tenants themselves. It is the only service whose
// operations are not tenant-scoped: provisioning a hotel happens from the
// platform side, before any tenant context exists.
type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	tenant := &domain.Tenant{
		Name:      req.Name,
		RateLimit: req.RateLimit,
	}

	created, err := s.repo.Tenants().Create(ctx, tenant)
	if err != nil {
		return dto.TenantResponse{}, err
	}
	return dto.FromTenant(created), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.repo.Tenants().GetByID(ctx, id)
}

func (s *TenantService) Update(ctx context.Context, tenant *domain.Tenant) error {
	tenant.UpdatedAt = time.Now()
	return s.repo.Tenants().Update(ctx, tenant)
}

func (s *TenantService) Delete(ctx context.Context, id string) error {
	return s.repo.Tenants().Delete(ctx, id)
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenants().List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = dto.FromTenant(&tenants[i])
	}
	return responses, nil
}
