package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlexanderJohnD/WealthWise/internal/aggregation"
	"github.com/AlexanderJohnD/WealthWise/internal/goals"
	"github.com/AlexanderJohnD/WealthWise/internal/logger"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
	"github.com/AlexanderJohnD/WealthWise/internal/store"
)

// dashboardService reads every collection and hands them to the
// aggregation engine.
type dashboardService struct {
	accounts      *store.Repository[models.Account]
	investments   *store.Repository[models.Investment]
	expenses      *store.Repository[models.Expense]
	goals         goals.Repository
	monthlyIncome decimal.Decimal
}

// NewDashboardService creates a new DashboardServicer. monthlyIncome is the
// income figure the savings rate is computed against.
func NewDashboardService(db *gorm.DB, goalRepo goals.Repository, monthlyIncome decimal.Decimal) DashboardServicer {
	return &dashboardService{
		accounts:      store.Accounts(db),
		investments:   store.Investments(db),
		expenses:      store.Expenses(db),
		goals:         goalRepo,
		monthlyIncome: monthlyIncome,
	}
}

// Summary computes the dashboard for ownerID as of asOf. A zero asOf means now.
func (s *dashboardService) Summary(ctx context.Context, ownerID uint, asOf time.Time) (*aggregation.Summary, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	accounts, err := s.accounts.ListAll(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}
	investments, err := s.investments.ListAll(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListAll(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}
	goalList, err := s.goals.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := aggregation.Summarize(aggregation.Inputs{
		Accounts:      accounts,
		Investments:   investments,
		Expenses:      expenses,
		Goals:         goalList,
		MonthlyIncome: s.monthlyIncome,
		AsOf:          asOf.UTC(),
	})

	logger.Get().Debugw("dashboard computed",
		"owner_id", ownerID,
		"accounts", len(accounts),
		"investments", len(investments),
		"expenses", len(expenses),
		"goals", len(goalList),
	)
	return &summary, nil
}
