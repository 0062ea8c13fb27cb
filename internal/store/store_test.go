package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
	"github.com/AlexanderJohnD/WealthWise/internal/store"
	"github.com/AlexanderJohnD/WealthWise/internal/testutil"
)

func TestInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns_increasing_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := store.Accounts(db)

		var last uint
		for _, name := range []string{"Checking", "Savings", "Brokerage"} {
			account := &models.Account{UserID: 1, Name: name, Type: models.AccountTypeChecking}
			testutil.AssertNoError(t, repo.Insert(ctx, account))
			if account.ID <= last {
				t.Errorf("expected id greater than %d, got %d", last, account.ID)
			}
			last = account.ID
		}
	})

	t.Run("stamps_server_timestamps", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := store.Expenses(db)

		before := time.Now().UTC().Add(-time.Second)
		expense := &models.Expense{UserID: 1, Amount: decimal.NewFromInt(20), Description: "Lunch"}
		testutil.AssertNoError(t, repo.Insert(ctx, expense))

		if expense.Date.Before(before) {
			t.Errorf("expected date to be stamped at insert, got %v", expense.Date)
		}
		if expense.CreatedAt.IsZero() {
			t.Error("expected created_at to be set")
		}
	})

	t.Run("balance_defaults_to_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := store.Accounts(db)

		testutil.AssertNoError(t, repo.Insert(ctx, &models.Account{UserID: 1, Name: "Empty", Type: "savings"}))

		accounts, err := repo.ListAll(ctx, 1, "")
		testutil.AssertNoError(t, err)
		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		testutil.AssertDecimal(t, accounts[0].Balance, "0")
	})

	t.Run("missing_required_field_is_storage_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := store.Investments(db)

		err := repo.Insert(ctx, &models.Investment{UserID: 1, Shares: 10, PurchasePrice: decimal.NewFromInt(150)})
		testutil.AssertAppError(t, err, "STORAGE_ERROR")

		investments, err := repo.ListAll(ctx, 1, "")
		testutil.AssertNoError(t, err)
		if len(investments) != 0 {
			t.Errorf("expected failed insert to leave no row, got %d", len(investments))
		}
	})

	t.Run("ids_not_reused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := store.Accounts(db)

		first := &models.Account{UserID: 1, Name: "First", Type: "checking"}
		testutil.AssertNoError(t, repo.Insert(ctx, first))
		testutil.AssertNoError(t, db.Exec("DELETE FROM accounts WHERE id = ?", first.ID).Error)

		second := &models.Account{UserID: 1, Name: "Second", Type: "checking"}
		testutil.AssertNoError(t, repo.Insert(ctx, second))
		if second.ID <= first.ID {
			t.Errorf("expected id after %d, got %d", first.ID, second.ID)
		}
	})

	t.Run("closed_database_is_storage_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		sqlDB, err := db.DB()
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, sqlDB.Close())

		err = store.Accounts(db).Insert(ctx, &models.Account{UserID: 1, Name: "Gone", Type: "checking"})
		testutil.AssertAppError(t, err, "STORAGE_ERROR")
	})
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC) }

	t.Run("empty_store_yields_empty_slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		accounts, err := store.Accounts(db).ListAll(ctx, 1, "")
		testutil.AssertNoError(t, err)
		if accounts == nil || len(accounts) != 0 {
			t.Errorf("expected empty slice, got %v", accounts)
		}
	})

	t.Run("expenses_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestExpense(t, db, 1, "10", day(3))
		testutil.CreateTestExpense(t, db, 1, "20", day(10))
		testutil.CreateTestExpense(t, db, 1, "30", day(1))

		expenses, err := store.Expenses(db).ListAll(ctx, 1, "")
		testutil.AssertNoError(t, err)
		if len(expenses) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(expenses))
		}
		for i, want := range []string{"20", "10", "30"} {
			testutil.AssertDecimal(t, expenses[i].Amount, want)
		}
	})

	t.Run("investments_newest_purchase_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestInvestment(t, db, 1, "MSFT", 1, "300", day(2))
		testutil.CreateTestInvestment(t, db, 1, "AAPL", 1, "150", day(20))

		investments, err := store.Investments(db).ListAll(ctx, 1, "")
		testutil.AssertNoError(t, err)
		if len(investments) != 2 || investments[0].Symbol != "AAPL" || investments[1].Symbol != "MSFT" {
			t.Errorf("expected [AAPL MSFT], got %+v", investments)
		}
	})

	t.Run("explicit_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestExpense(t, db, 1, "10", day(3))
		testutil.CreateTestExpense(t, db, 1, "20", day(10))

		expenses, err := store.Expenses(db).ListAll(ctx, 1, "date ASC")
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, expenses[0].Amount, "10")
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestAccount(t, db, 1, "100")
		testutil.CreateTestAccount(t, db, 2, "200")

		accounts, err := store.Accounts(db).ListAll(ctx, 2, "")
		testutil.AssertNoError(t, err)
		if len(accounts) != 1 {
			t.Fatalf("expected 1 account for owner 2, got %d", len(accounts))
		}
		testutil.AssertDecimal(t, accounts[0].Balance, "200")
	})

	t.Run("money_round_trips_exactly", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestAccount(t, db, 1, "0.10")
		testutil.CreateTestAccount(t, db, 1, "0.20")

		accounts, err := store.Accounts(db).ListAll(ctx, 1, "")
		testutil.AssertNoError(t, err)
		sum := accounts[0].Balance.Add(accounts[1].Balance)
		testutil.AssertDecimal(t, sum, "0.3")
	})
}
