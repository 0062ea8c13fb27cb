package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := newTestRouter()
	owned := r.Group("", injectOwnerID(1))
	owned.GET("/accounts", handler.ListAccounts)
	owned.POST("/accounts", handler.CreateAccount)
	return r
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	t.Run("returns 200 with plain array", func(t *testing.T) {
		svc := &mockAccountService{
			listAccountsFn: func(_ context.Context, ownerID uint) ([]models.Account, error) {
				return []models.Account{
					{Base: models.Base{ID: 1}, UserID: ownerID, Name: "Checking", Type: "checking", Balance: decimal.RequireFromString("3500.50")},
				}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "GET", "/accounts", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		accounts := parseJSONArray(t, rec)
		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		account := accounts[0].(map[string]interface{})
		if account["balance"].(float64) != 3500.5 {
			t.Errorf("expected numeric balance 3500.5, got %v", account["balance"])
		}
	})

	t.Run("returns empty array when none", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "GET", "/accounts", "")
		if rec.Body.String() != "[]" {
			t.Errorf("expected [], got %s", rec.Body.String())
		}
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		svc := &mockAccountService{
			listAccountsFn: func(context.Context, uint) ([]models.Account, error) {
				return nil, apperrors.ErrStorage
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "GET", "/accounts", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORAGE_ERROR")
	})
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotBalance *decimal.Decimal
		var gotType models.AccountType
		svc := &mockAccountService{
			createAccountFn: func(_ context.Context, ownerID uint, name string, accountType models.AccountType, balance *decimal.Decimal) (*models.Account, error) {
				gotBalance, gotType = balance, accountType
				return &models.Account{Base: models.Base{ID: 7}, UserID: ownerID, Name: name, Type: accountType, Balance: *balance}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "POST", "/accounts", `{"name":"Checking","type":"Checking","balance":1200.25}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotBalance == nil || !gotBalance.Equal(decimal.RequireFromString("1200.25")) {
			t.Errorf("expected balance 1200.25, got %v", gotBalance)
		}
		if gotType != "checking" {
			t.Errorf("expected normalized type checking, got %q", gotType)
		}
		result := parseJSON(t, rec)
		if result["id"].(float64) != 7 {
			t.Errorf("expected id=7, got %v", result["id"])
		}
	})

	t.Run("balance is optional", func(t *testing.T) {
		var gotBalance *decimal.Decimal
		svc := &mockAccountService{
			createAccountFn: func(_ context.Context, _ uint, _ string, _ models.AccountType, balance *decimal.Decimal) (*models.Account, error) {
				gotBalance = balance
				return &models.Account{}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "POST", "/accounts", `{"name":"Savings","type":"savings"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotBalance != nil {
			t.Errorf("expected nil balance, got %v", gotBalance)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "POST", "/accounts", `{"type":"checking"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "POST", "/accounts", `{"name":`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 400 on empty body", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "POST", "/accounts", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 without owner", func(t *testing.T) {
		handler := NewAccountHandler(&mockAccountService{})
		r := newTestRouter()
		r.POST("/accounts", handler.CreateAccount)

		rec := doRequest(r, "POST", "/accounts", `{"name":"Checking","type":"checking"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNKNOWN_OWNER")
	})
}
