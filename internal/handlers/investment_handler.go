package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexanderJohnD/WealthWise/internal/input"
	"github.com/AlexanderJohnD/WealthWise/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// ListInvestments handles listing the owner's holdings, newest purchase first.
// @Summary     List investments
// @Description Get all investment holdings of the owner, newest purchase first
// @Tags        investments
// @Produce     json
// @Param       X-Owner-ID header int false "Owner ID (default 1)"
// @Success     200 {array}  models.Investment "Investments"
// @Failure     400 {object} ErrorResponse "Unknown owner"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	investments, err := h.investmentService.ListInvestments(c.Request.Context(), ownerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, investments)
}

// CreateInvestment handles recording a new holding.
// @Summary     Add investment
// @Description Record shares of a ticker bought at a price per share
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header int                  false "Owner ID (default 1)"
// @Param       request    body   input.InvestmentInput true  "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse     "Invalid input"
// @Failure     500 {object} ErrorResponse     "Storage error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req input.InvestmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(input.ToValidationError(err))
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), ownerID, req.Symbol, req.Shares, req.PurchasePrice)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, investment)
}
