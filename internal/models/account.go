package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType tags an account. The set is open; these are the known values.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a financial account in the system
type Account struct {
	Base
	UserID  uint            `gorm:"not null;index" json:"user_id"`
	Name    string          `gorm:"not null" json:"name"`
	Type    AccountType     `gorm:"not null" json:"type"`
	Balance decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0" json:"balance"`
}

// BeforeCreate rejects accounts without an owner, name or type.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Type = AccountType(strings.ToLower(strings.TrimSpace(string(a.Type))))

	switch {
	case a.UserID == 0:
		return fmt.Errorf("%w: account user_id", ErrMissingField)
	case a.Name == "":
		return fmt.Errorf("%w: account name", ErrMissingField)
	case a.Type == "":
		return fmt.Errorf("%w: account type", ErrMissingField)
	}
	return nil
}
