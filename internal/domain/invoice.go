package domain

import (
	"time"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceIssued    InvoiceStatus = "issued"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:     {InvoiceIssued, InvoiceCancelled},
	InvoiceIssued:    {InvoiceSent, InvoicePaid, InvoiceCancelled},
	InvoiceSent:      {InvoicePaid, InvoiceOverdue, InvoiceCancelled},
	InvoiceOverdue:   {InvoicePaid, InvoiceCancelled},
	InvoicePaid:      {},
	InvoiceCancelled: {},
}

func CanTransitionInvoice(from, to InvoiceStatus) bool {
	for _, next := range invoiceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type InvoiceItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Amount      int64  `json:"amount"`
}

type Invoice struct {
	ID            string        `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID      string        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	InvoiceNumber string        `gorm:"type:text;not null" json:"invoice_number"`
	GuestID       string        `gorm:"type:text;not null" json:"guest_id"`
	CompanyName   string        `gorm:"type:text" json:"company_name,omitempty"`
	Status        InvoiceStatus `gorm:"type:text;not null;default:'draft'" json:"status"`
	IssueDate     string        `gorm:"type:date" json:"issue_date,omitempty"`
	DueDate       string        `gorm:"type:date" json:"due_date,omitempty"`
	Items         []InvoiceItem `gorm:"serializer:json" json:"items"`
	Subtotal      int64         `json:"subtotal"`
	TaxAmount     int64         `json:"tax_amount"`
	TotalAmount   int64         `json:"total_amount"`
	PaidAmount    int64         `json:"paid_amount"`
	Balance       int64         `json:"balance"`
	Currency      string        `gorm:"type:text;not null;default:'INR'" json:"currency"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i Invoice) GetID() string       { return i.ID }
func (i Invoice) GetTenantID() string { return i.TenantID }

type InvoiceFilter struct {
	Status    InvoiceStatus `json:"status"`
	GuestID   string        `json:"guest_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Search    string        `json:"search"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
}
