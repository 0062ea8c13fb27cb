package testutil_test

import (
	"testing"
	"time"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
	"github.com/AlexanderJohnD/WealthWise/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	for _, table := range []string{"accounts", "investments", "expenses"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolation(t *testing.T) {
	first := testutil.SetupTestDB(t)
	second := testutil.SetupTestDB(t)

	testutil.CreateTestAccount(t, first, 1, "10")

	var count int64
	if err := second.Model(&models.Account{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected isolated database to be empty, got %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)

	account := testutil.CreateTestAccount(t, db, 1, "5000.50")
	if account.ID == 0 {
		t.Fatal("account should have a non-zero ID")
	}
	testutil.AssertDecimal(t, account.Balance, "5000.5")

	inv := testutil.CreateTestInvestment(t, db, 1, "aapl", 10, "150", time.Time{})
	if inv.Symbol != "AAPL" {
		t.Errorf("expected normalized symbol AAPL, got %q", inv.Symbol)
	}
	if inv.PurchaseDate.IsZero() {
		t.Error("expected purchase date to be stamped")
	}

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expense := testutil.CreateTestExpense(t, db, 1, "12.34", date)
	if !expense.Date.Equal(date) {
		t.Errorf("expected date %v, got %v", date, expense.Date)
	}
	if expense.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC created_at, got %v", expense.CreatedAt.Location())
	}
}
