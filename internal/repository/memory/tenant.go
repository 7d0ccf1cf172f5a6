package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/repository"
)

// tenantStore holds tenants, which are not themselves tenant-scoped.
type tenantStore struct {
	mu      sync.RWMutex
	tenants []domain.Tenant
}

func newTenantStore() *tenantStore {
	return &tenantStore{}
}

func (s *tenantStore) Create(_ context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	now := time.Now()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now
	s.tenants = append([]domain.Tenant{*tenant}, s.tenants...)
	return tenant, nil
}

func (s *tenantStore) GetByID(_ context.Context, id string) (*domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tenant := range s.tenants {
		if tenant.ID == id {
			t := tenant
			return &t, nil
		}
	}
	return nil, nil
}

func (s *tenantStore) Update(_ context.Context, tenant *domain.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tenants {
		if existing.ID == tenant.ID {
			s.tenants[i] = *tenant
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *tenantStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tenants {
		if existing.ID == id {
			s.tenants = append(s.tenants[:i], s.tenants[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *tenantStore) List(_ context.Context) ([]domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Tenant{}, s.tenants...), nil
}
