package domain

import (
	"time"
)

type AccountType string

const (
	AccountAsset     AccountType = "asset"
	AccountLiability AccountType = "liability"
	AccountEquity    AccountType = "equity"
	AccountRevenue   AccountType = "revenue"
	AccountExpense   AccountType = "expense"
)

// Account is one entry in a tenant's chart of accounts. Codes are unique
// within a tenant, not globally.
type Account struct {
	ID              string      `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID        string      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Code            string      `gorm:"type:text;not null" json:"code"`
	Name            string      `gorm:"type:text;not null" json:"name"`
	Type            AccountType `gorm:"type:text;not null" json:"type"`
	Description     string      `gorm:"type:text" json:"description,omitempty"`
	Balance         int64       `gorm:"not null;default:0" json:"balance"`
	Currency        string      `gorm:"type:text;not null;default:'INR'" json:"currency"`
	IsActive        bool        `gorm:"not null;default:true" json:"is_active"`
	IsSystemAccount bool        `gorm:"not null;default:false" json:"is_system_account"`
	CreatedAt       time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a Account) GetID() string       { return a.ID }
func (a Account) GetTenantID() string { return a.TenantID }

type AccountFilter struct {
	Type     AccountType `json:"type"`
	IsActive *bool       `json:"is_active"`
	Search   string      `json:"search"`
}

type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

type Transaction struct {
	ID                string          `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID          string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	TransactionNumber string          `gorm:"type:text;not null" json:"transaction_number"`
	Date              string          `gorm:"type:date;not null" json:"date"`
	AccountID         string          `gorm:"type:uuid;not null" json:"account_id"`
	Type              TransactionType `gorm:"type:text;not null" json:"type"`
	Amount            int64           `gorm:"not null" json:"amount"`
	Balance           int64           `gorm:"not null" json:"balance"`
	Description       string          `gorm:"type:text;not null" json:"description"`
	ReferenceType     string          `gorm:"type:text" json:"reference_type,omitempty"`
	ReferenceID       string          `gorm:"type:text" json:"reference_id,omitempty"`
	CreatedAt         time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t Transaction) GetID() string       { return t.ID }
func (t Transaction) GetTenantID() string { return t.TenantID }

type TransactionFilter struct {
	Type      TransactionType `json:"type"`
	AccountID string          `json:"account_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Search    string          `json:"search"`
	Page      int             `json:"page"`
	PageSize  int             `json:"page_size"`
}
