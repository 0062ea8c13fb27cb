package aggregation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// MonthlyWindow is the length of the rolling "monthly" expense window.
const MonthlyWindow = 30 * 24 * time.Hour

// AccountsTotal sums account balances.
func AccountsTotal(accounts []models.Account) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		total = total.Add(accounts[i].Balance)
	}
	return total
}

// MonthlyExpenses sums the expenses dated within [asOf-30d, asOf]. Both
// bounds are inclusive; expenses dated after asOf are not counted.
func MonthlyExpenses(expenses []models.Expense, asOf time.Time) decimal.Decimal {
	from := asOf.Add(-MonthlyWindow)

	total := decimal.Zero
	for i := range expenses {
		date := expenses[i].Date
		if date.Before(from) || date.After(asOf) {
			continue
		}
		total = total.Add(expenses[i].Amount)
	}
	return total
}

// SavingsRate is the share of income left after expenses, in percent. It
// never goes below zero, so overspending reads as 0%. Zero income gives 0.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	rate := income.Sub(expenses).Div(income).Mul(hundred)
	return decimal.Max(decimal.Zero, rate)
}

// NetWorth adds account balances and investment value. Expenses are not
// subtracted; balances are assumed to already reflect spending.
func NetWorth(accountsTotal, investmentsTotal decimal.Decimal) decimal.Decimal {
	return accountsTotal.Add(investmentsTotal)
}

// RecentExpenses returns up to n expenses, newest first. The input slice is
// left untouched.
func RecentExpenses(expenses []models.Expense, n int) []models.Expense {
	recent := make([]models.Expense, len(expenses))
	copy(recent, expenses)
	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].Date.Equal(recent[j].Date) {
			return recent[i].ID > recent[j].ID
		}
		return recent[i].Date.After(recent[j].Date)
	})
	if n >= 0 && len(recent) > n {
		recent = recent[:n]
	}
	return recent
}
