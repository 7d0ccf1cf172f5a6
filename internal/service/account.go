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

type AccountService struct {
	repo repository.Repository
}

func NewAccountService(repo repository.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// GetAll returns the tenant's chart of accounts sorted by code.
func (s *AccountService) GetAll(ctx context.Context, tenantID string, filter domain.AccountFilter) ([]domain.Account, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	accounts, err := s.repo.Accounts().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	filtered := accounts[:0:0]
	for _, a := range accounts {
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if filter.IsActive != nil && a.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(a.Name), search) &&
				!strings.Contains(strings.ToLower(a.Code), search) {
				continue
			}
		}
		filtered = append(filtered, a)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Code < filtered[j].Code
	})
	return filtered, nil
}

func (s *AccountService) GetByID(ctx context.Context, tenantID, id string) (*domain.Account, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}
	return s.repo.Accounts().GetByID(ctx, tenantID, id)
}

// Create adds an account to the tenant's chart. Account codes are unique
// within a tenant; two tenants can both own a "1001".
func (s *AccountService) Create(ctx context.Context, tenantID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	existing, err := s.repo.Accounts().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, a := range existing {
		if a.Code == req.Code {
			return nil, newValidationError("code", "account code already in use")
		}
	}

	account := req.ToAccount()
	now := time.Now()
	account.ID = uuid.New().String()
	account.TenantID = tenantID
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := s.repo.Accounts().Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func (s *AccountService) Update(ctx context.Context, tenantID, id string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	account, err := s.repo.Accounts().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, ErrNotFound
	}
	if account.IsSystemAccount {
		return nil, fmt.Errorf("%w: system accounts cannot be modified", ErrInvalidState)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.UpdatedAt = time.Now()

	if err := s.repo.Accounts().Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// Delete deactivates nothing: an account with recorded transactions is part
// of the books, so only empty non-system accounts may be removed.
func (s *AccountService) Delete(ctx context.Context, tenantID, id string) error {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return err
	}

	account, err := s.repo.Accounts().GetByID(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return ErrNotFound
	}
	if account.IsSystemAccount {
		return fmt.Errorf("%w: system accounts cannot be deleted", ErrInvalidState)
	}

	transactions, err := s.repo.Transactions().List(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	for _, t := range transactions {
		if t.AccountID == id {
			return fmt.Errorf("%w: account has recorded transactions", ErrInvalidState)
		}
	}

	if err := s.repo.Accounts().Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// GetTransactions lists the tenant's ledger entries, newest date first.
func (s *AccountService) GetTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) (tenancy.Page[domain.Transaction], error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return tenancy.Page[domain.Transaction]{}, err
	}

	transactions, err := s.repo.Transactions().List(ctx, tenantID)
	if err != nil {
		return tenancy.Page[domain.Transaction]{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := transactions[:0:0]
	for _, t := range transactions {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.AccountID != "" && t.AccountID != filter.AccountID {
			continue
		}
		if filter.StartDate != "" && t.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && t.Date > filter.EndDate {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(t.Description), search) &&
				!strings.Contains(strings.ToLower(t.TransactionNumber), search) {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	return tenancy.Paginate(filtered, filter.Page, filter.PageSize), nil
}

// RecordTransaction posts a debit or credit against one of the tenant's
// accounts and moves the account balance. A debit increases asset and expense
// balances and decreases the rest; a credit does the opposite.
func (s *AccountService) RecordTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := tenancy.RequireTenantID(tenantID); err != nil {
		return nil, err
	}

	account, err := s.repo.Accounts().GetByID(ctx, tenantID, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, newValidationError("account_id", "account does not exist")
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account is inactive", ErrInvalidState)
	}

	now := time.Now()
	date := req.Date
	if date == "" {
		date = now.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, newValidationError("date", "must be a YYYY-MM-DD date")
	}

	delta := req.Amount
	if (req.Type == domain.TransactionDebit) != debitIncreases(account.Type) {
		delta = -delta
	}
	account.Balance += delta
	account.UpdatedAt = now

	existing, err := s.repo.Transactions().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transaction := &domain.Transaction{
		ID:                uuid.New().String(),
		TenantID:          tenantID,
		TransactionNumber: nextNumber(fmt.Sprintf("TXN-%d", now.Year()), transactionNumbers(existing)),
		Date:              date,
		AccountID:         account.ID,
		Type:              req.Type,
		Amount:            req.Amount,
		Balance:           account.Balance,
		Description:       req.Description,
		ReferenceType:     req.ReferenceType,
		ReferenceID:       req.ReferenceID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Transactions().Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	if err := s.repo.Accounts().Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account balance: %w", err)
	}
	return transaction, nil
}

func debitIncreases(t domain.AccountType) bool {
	return t == domain.AccountAsset || t == domain.AccountExpense
}

func transactionNumbers(transactions []domain.Transaction) []string {
	numbers := make([]string, len(transactions))
	for i, t := range transactions {
		numbers[i] = t.TransactionNumber
	}
	return numbers
}
