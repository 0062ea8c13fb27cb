package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlexanderJohnD/WealthWise/internal/aggregation"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	ListAccounts(ctx context.Context, ownerID uint) ([]models.Account, error)
	CreateAccount(ctx context.Context, ownerID uint, name string, accountType models.AccountType, balance *decimal.Decimal) (*models.Account, error)
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	ListInvestments(ctx context.Context, ownerID uint) ([]models.Investment, error)
	CreateInvestment(ctx context.Context, ownerID uint, symbol string, shares int64, purchasePrice decimal.Decimal) (*models.Investment, error)
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context, ownerID uint) ([]models.Expense, error)
	CreateExpense(ctx context.Context, ownerID uint, description string, amount decimal.Decimal, category string) (*models.Expense, error)
}

// GoalServicer defines the contract for savings goals. Goals are not scoped
// to an owner.
type GoalServicer interface {
	ListGoals(ctx context.Context) ([]models.Goal, error)
	CreateGoal(ctx context.Context, title string, target decimal.Decimal, current *decimal.Decimal) (*models.Goal, error)
}

// DashboardServicer computes the dashboard figures for an owner.
type DashboardServicer interface {
	Summary(ctx context.Context, ownerID uint, asOf time.Time) (*aggregation.Summary, error)
}
