package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Investment represents a holding of a ticker bought at a fixed price.
// CurrentPrice is zero when no market price is known.
type Investment struct {
	Base
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	Symbol        string          `gorm:"not null" json:"symbol"`
	Shares        int64           `gorm:"not null" json:"shares"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"purchase_price"`
	CurrentPrice  decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0" json:"current_price"`
	PurchaseDate  time.Time       `gorm:"not null;index" json:"purchase_date"`
}

// NormalizeSymbol trims a ticker and upper-cases it.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// BeforeCreate normalizes the ticker, stamps the purchase date and rejects
// holdings missing a symbol, share count or purchase price.
func (i *Investment) BeforeCreate(tx *gorm.DB) error {
	i.Symbol = NormalizeSymbol(i.Symbol)
	if i.PurchaseDate.IsZero() {
		i.PurchaseDate = tx.NowFunc()
	}

	switch {
	case i.UserID == 0:
		return fmt.Errorf("%w: investment user_id", ErrMissingField)
	case i.Symbol == "":
		return fmt.Errorf("%w: investment symbol", ErrMissingField)
	case i.Shares == 0:
		return fmt.Errorf("%w: investment shares", ErrMissingField)
	case i.PurchasePrice.IsZero():
		return fmt.Errorf("%w: investment purchase_price", ErrMissingField)
	}
	return nil
}
