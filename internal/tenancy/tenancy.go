// Package tenancy implements the tenant isolation primitives shared by every
// repository and service: guard, filter, scoped lookup and pagination. All
// data access in this codebase goes through these helpers so that a record
// belonging to one tenant can never be observed by another.
package tenancy

import (
	"errors"
	"strings"
)

// ErrMissingTenantContext is returned when an operation is invoked without a
// tenant id. This is a programming-contract violation: callers are expected to
// obtain the tenant id from an authenticated session before calling any
// service method.
var ErrMissingTenantContext = errors.New("missing tenant context")

// Record is implemented by every tenant-scoped domain entity.
type Record interface {
	GetID() string
	GetTenantID() string
}

// RequireTenantID validates that a tenant id is present. Every service method
// calls this before touching its backing collection.
func RequireTenantID(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return ErrMissingTenantContext
	}
	return nil
}

// FilterByTenant returns the records owned by the given tenant, preserving
// relative order. The input slice is never mutated.
func FilterByTenant[T Record](items []T, tenantID string) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetTenantID() == tenantID {
			result = append(result, item)
		}
	}
	return result
}

// FindByIDAndTenant returns the unique record matching both id and tenant id.
// A record that exists under a different tenant is reported exactly like a
// record that does not exist at all, so callers cannot distinguish the two
// cases from the result.
func FindByIDAndTenant[T Record](items []T, id, tenantID string) (T, bool) {
	for _, item := range items {
		if item.GetID() == id && item.GetTenantID() == tenantID {
			return item, true
		}
	}
	var zero T
	return zero, false
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Page is one page of a tenant-scoped listing.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// Paginate slices items into a 1-based page. Out-of-range pages yield an
// empty (never nil) item slice.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      append([]T{}, items[start:end]...),
		Total:      int64(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
