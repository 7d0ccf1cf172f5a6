package domain

import (
	"time"
)

type PurchaseOrderStatus string

const (
	PODraft           PurchaseOrderStatus = "draft"
	POPendingApproval PurchaseOrderStatus = "pending_approval"
	POApproved        PurchaseOrderStatus = "approved"
	POSent            PurchaseOrderStatus = "sent"
	POAcknowledged    PurchaseOrderStatus = "acknowledged"
	POPartialReceived PurchaseOrderStatus = "partial_received"
	POReceived        PurchaseOrderStatus = "received"
	POCancelled       PurchaseOrderStatus = "cancelled"
)

var purchaseOrderTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	PODraft:           {POPendingApproval, POCancelled},
	POPendingApproval: {POApproved, PODraft, POCancelled},
	POApproved:        {POSent, POCancelled},
	POSent:            {POAcknowledged, POPartialReceived, POReceived, POCancelled},
	POAcknowledged:    {POPartialReceived, POReceived},
	POPartialReceived: {POReceived},
	POReceived:        {},
	POCancelled:       {},
}

func CanTransitionPurchaseOrder(from, to PurchaseOrderStatus) bool {
	for _, next := range purchaseOrderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type PurchaseOrderItem struct {
	ID               string `json:"id"`
	ItemID           string `json:"item_id"`
	Description      string `json:"description"`
	Quantity         int    `json:"quantity"`
	ReceivedQuantity int    `json:"received_quantity"`
	UnitPrice        int64  `json:"unit_price"`
	TotalPrice       int64  `json:"total_price"`
}

type PurchaseOrder struct {
	ID                   string              `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID             string              `gorm:"type:uuid;not null;index" json:"tenant_id"`
	PONumber             string              `gorm:"type:text;not null" json:"po_number"`
	VendorID             string              `gorm:"type:text;not null" json:"vendor_id"`
	Status               PurchaseOrderStatus `gorm:"type:text;not null;default:'draft'" json:"status"`
	Items                []PurchaseOrderItem `gorm:"serializer:json" json:"items"`
	Subtotal             int64               `json:"subtotal"`
	TaxAmount            int64               `json:"tax_amount"`
	ShippingCost         int64               `json:"shipping_cost"`
	TotalAmount          int64               `json:"total_amount"`
	Currency             string              `gorm:"type:text;not null;default:'INR'" json:"currency"`
	ExpectedDeliveryDate string              `gorm:"type:date" json:"expected_delivery_date,omitempty"`
	DeliveryAddress      string              `gorm:"type:text" json:"delivery_address,omitempty"`
	Notes                string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy            string              `gorm:"type:uuid" json:"created_by"`
	ApprovedBy           string              `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt           *time.Time          `gorm:"type:timestamp with time zone" json:"approved_at,omitempty"`
	SentAt               *time.Time          `gorm:"type:timestamp with time zone" json:"sent_at,omitempty"`
	CreatedAt            time.Time           `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time           `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

func (p PurchaseOrder) GetID() string       { return p.ID }
func (p PurchaseOrder) GetTenantID() string { return p.TenantID }

type PurchaseOrderFilter struct {
	Status    PurchaseOrderStatus `json:"status"`
	VendorID  string              `json:"vendor_id"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Search    string              `json:"search"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

type PurchaseOrderStats struct {
	Total           int64 `json:"total"`
	Draft           int64 `json:"draft"`
	PendingApproval int64 `json:"pending_approval"`
	Approved        int64 `json:"approved"`
	Sent            int64 `json:"sent"`
	Received        int64 `json:"received"`
	TotalValue      int64 `json:"total_value"`
	PendingValue    int64 `json:"pending_value"`
}
