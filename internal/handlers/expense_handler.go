package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexanderJohnD/WealthWise/internal/input"
	"github.com/AlexanderJohnD/WealthWise/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpenses handles listing the owner's expenses, newest first.
// @Summary     List expenses
// @Description Get all expenses of the owner, newest first
// @Tags        expenses
// @Produce     json
// @Param       X-Owner-ID header int false "Owner ID (default 1)"
// @Success     200 {array}  models.Expense "Expenses"
// @Failure     400 {object} ErrorResponse "Unknown owner"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), ownerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense handles recording money spent.
// @Summary     Add expense
// @Description Record an expense dated now
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header int               false "Owner ID (default 1)"
// @Param       request    body   input.ExpenseInput true  "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse  "Invalid input"
// @Failure     500 {object} ErrorResponse  "Storage error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req input.ExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(input.ToValidationError(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), ownerID, req.Description, req.Amount, req.Category)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}
