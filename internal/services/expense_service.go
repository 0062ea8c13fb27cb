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

// expenseService handles expense-related business logic.
type expenseService struct {
	expenses *store.Repository[models.Expense]
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{expenses: store.Expenses(db)}
}

// ListExpenses returns the owner's expenses, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, ownerID uint) ([]models.Expense, error) {
	return s.expenses.ListAll(ctx, ownerID, "")
}

// CreateExpense records money spent now.
func (s *expenseService) CreateExpense(ctx context.Context, ownerID uint, description string, amount decimal.Decimal, category string) (*models.Expense, error) {
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)

	if description == "" {
		return nil, apperrors.Validation("description is required")
	}
	if category == "" {
		return nil, apperrors.Validation("category is required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.Validation("amount must be positive")
	}

	expense := &models.Expense{
		UserID:      ownerID,
		Amount:      amount,
		Description: description,
		Category:    category,
	}
	if err := s.expenses.Insert(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}
