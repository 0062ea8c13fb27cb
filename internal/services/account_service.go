package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
	"github.com/AlexanderJohnD/WealthWise/internal/store"
)

// accountService handles account-related business logic.
type accountService struct {
	accounts *store.Repository[models.Account]
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{accounts: store.Accounts(db)}
}

// ListAccounts returns all accounts of the owner.
func (s *accountService) ListAccounts(ctx context.Context, ownerID uint) ([]models.Account, error) {
	return s.accounts.ListAll(ctx, ownerID, "")
}

// CreateAccount stores a new account. A nil balance opens the account at zero;
// balances may be negative.
func (s *accountService) CreateAccount(ctx context.Context, ownerID uint, name string, accountType models.AccountType, balance *decimal.Decimal) (*models.Account, error) {
	name = strings.TrimSpace(name)
	accountType = models.AccountType(strings.ToLower(strings.TrimSpace(string(accountType))))

	if name == "" {
		return nil, apperrors.Validation("account name is required")
	}
	if accountType == "" {
		return nil, apperrors.Validation("account type is required")
	}

	account := &models.Account{
		UserID: ownerID,
		Name:   name,
		Type:   accountType,
	}
	if balance != nil {
		account.Balance = *balance
	}

	if err := s.accounts.Insert(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
