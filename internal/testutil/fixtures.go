package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates a checking account with the given balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, ownerID uint, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:  ownerID,
		Name:    fmt.Sprintf("Test Account %d", nextID()),
		Type:    models.AccountTypeChecking,
		Balance: decimal.RequireFromString(balance),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestInvestment creates a holding of shares bought at price on
// purchased. A zero purchased lets the store stamp the insert time.
func CreateTestInvestment(t *testing.T, db *gorm.DB, ownerID uint, symbol string, shares int64, price string, purchased time.Time) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:        ownerID,
		Symbol:        symbol,
		Shares:        shares,
		PurchasePrice: decimal.RequireFromString(price),
		PurchaseDate:  purchased,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}

// CreateTestExpense creates an expense of amount dated on date.
func CreateTestExpense(t *testing.T, db *gorm.DB, ownerID uint, amount string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      ownerID,
		Amount:      decimal.RequireFromString(amount),
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Category:    "general",
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
