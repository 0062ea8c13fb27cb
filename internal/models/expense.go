package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents money spent on a given date.
type Expense struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}

// BeforeCreate stamps the expense date and rejects expenses without an amount.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	if e.Date.IsZero() {
		e.Date = tx.NowFunc()
	}

	switch {
	case e.UserID == 0:
		return fmt.Errorf("%w: expense user_id", ErrMissingField)
	case e.Amount.IsZero():
		return fmt.Errorf("%w: expense amount", ErrMissingField)
	}
	return nil
}
