package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
	"github.com/AlexanderJohnD/WealthWise/internal/store"
)

// investmentService handles investment-related business logic.
type investmentService struct {
	investments *store.Repository[models.Investment]
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{investments: store.Investments(db)}
}

// ListInvestments returns the owner's holdings, newest purchase first.
func (s *investmentService) ListInvestments(ctx context.Context, ownerID uint) ([]models.Investment, error) {
	return s.investments.ListAll(ctx, ownerID, "")
}

// CreateInvestment records a purchase made now. The current price is left
// unknown so valuations fall back to the purchase price.
func (s *investmentService) CreateInvestment(ctx context.Context, ownerID uint, symbol string, shares int64, purchasePrice decimal.Decimal) (*models.Investment, error) {
	symbol = models.NormalizeSymbol(symbol)

	if symbol == "" {
		return nil, apperrors.Validation("symbol is required")
	}
	if shares <= 0 {
		return nil, apperrors.Validation("shares must be a positive whole number")
	}
	if !purchasePrice.IsPositive() {
		return nil, apperrors.Validation("purchase price must be positive")
	}

	inv := &models.Investment{
		UserID:        ownerID,
		Symbol:        symbol,
		Shares:        shares,
		PurchasePrice: purchasePrice,
	}
	if err := s.investments.Insert(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}
