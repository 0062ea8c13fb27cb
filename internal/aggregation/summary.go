package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// RecentExpenseLimit is how many expenses the dashboard lists.
const RecentExpenseLimit = 10

// Inputs is everything the dashboard is computed from.
type Inputs struct {
	Accounts      []models.Account
	Investments   []models.Investment
	Expenses      []models.Expense
	Goals         []models.Goal
	MonthlyIncome decimal.Decimal
	AsOf          time.Time
}

// Summary holds every derived dashboard figure.
type Summary struct {
	AsOf            time.Time        `json:"as_of"`
	AccountsTotal   decimal.Decimal  `json:"accounts_total"`
	NetWorth        decimal.Decimal  `json:"net_worth"`
	MonthlyIncome   decimal.Decimal  `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal  `json:"monthly_expenses"`
	SavingsRate     decimal.Decimal  `json:"savings_rate"`
	Portfolio       PortfolioTotals  `json:"portfolio"`
	Holdings        []Holding        `json:"holdings"`
	Goals           []GoalProgress   `json:"goals"`
	RecentExpenses  []models.Expense `json:"recent_expenses"`
}

// Summarize computes the full dashboard from in.
func Summarize(in Inputs) Summary {
	portfolio := Portfolio(in.Investments)
	accounts := AccountsTotal(in.Accounts)
	monthly := MonthlyExpenses(in.Expenses, in.AsOf)

	return Summary{
		AsOf:            in.AsOf,
		AccountsTotal:   accounts,
		NetWorth:        NetWorth(accounts, portfolio.TotalValue),
		MonthlyIncome:   in.MonthlyIncome,
		MonthlyExpenses: monthly,
		SavingsRate:     SavingsRate(in.MonthlyIncome, monthly),
		Portfolio:       portfolio,
		Holdings:        Holdings(in.Investments),
		Goals:           GoalsProgress(in.Goals),
		RecentExpenses:  RecentExpenses(in.Expenses, RecentExpenseLimit),
	}
}
