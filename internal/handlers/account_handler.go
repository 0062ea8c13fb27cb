package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexanderJohnD/WealthWise/internal/input"
	"github.com/AlexanderJohnD/WealthWise/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts handles listing every account of the owner.
// @Summary     List accounts
// @Description Get all accounts of the owner
// @Tags        accounts
// @Produce     json
// @Param       X-Owner-ID header int false "Owner ID (default 1)"
// @Success     200 {array}  models.Account "Accounts"
// @Failure     400 {object} ErrorResponse "Unknown owner"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), ownerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// CreateAccount handles creating a new account.
// @Summary     Create account
// @Description Create an account with an optional opening balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header int               false "Owner ID (default 1)"
// @Param       request    body   input.AccountInput true  "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse  "Invalid input"
// @Failure     500 {object} ErrorResponse  "Storage error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req input.AccountInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(input.ToValidationError(err))
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), ownerID, req.Name, req.AccountType(), req.Balance)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, account)
}
