package dto

import (
	"time"

	"github.com/hotelops/hotel-ops-api/internal/domain"
)

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RateLimit int       `json:"rate_limit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTenant(tenant *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		RateLimit: tenant.RateLimit,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is broadcast to websocket clients of the order's tenant whenever
// an order is created or changes status.
type OrderEvent struct {
	Type     string       `json:"type"`
	TenantID string       `json:"tenant_id"`
	Order    domain.Order `json:"order"`
}
