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

type MenuService struct {
	repo repository.Repository
}

func NewMenuService(repo repository.Repository) *MenuService {
	return &MenuService{repo: repo}
}

// GetAll returns the tenant's menu sorted by category then name. The menu is
// small enough that it is never paginated.
func (s *MenuService) GetAll(ctx context.Context, tenantID string, filter domain.MenuItemFilter) ([]domain.MenuItem, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	items, err := s.repo.MenuItems().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	filtered := items[:0:0]
	for _, item := range items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.IsAvailable != nil && item.IsAvailable != *filter.IsAvailable {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Category != filtered[j].Category {
			return filtered[i].Category < filtered[j].Category
		}
		return filtered[i].Name < filtered[j].Name
	})
	return filtered, nil
}

func (s *MenuService) GetByID(ctx context.Context, tenantID, id string) (*domain.MenuItem, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	return s.repo.MenuItems().GetByID(ctx, tenantID, id)
}

func (s *MenuService) Create(ctx context.Context, tenantID string, req dto.CreateMenuItemRequest) (*domain.MenuItem, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	item := req.ToMenuItem()
	now := time.Now()
	item.ID = uuid.New().String()
	item.TenantID = tenantID
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.repo.MenuItems().Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, tenantID, id string, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	item, err := s.repo.MenuItems().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up menu item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, newValidationError("price", "must be positive")
		}
		item.Price = *req.Price
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}
	if req.IsVegetarian != nil {
		item.IsVegetarian = *req.IsVegetarian
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.MenuItems().Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, tenantID, id string) error {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return err
	}

	item, err := s.repo.MenuItems().GetByID(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to look up menu item: %w", err)
	}
	if item == nil {
		return ErrNotFound
	}
	if err := s.repo.MenuItems().Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
