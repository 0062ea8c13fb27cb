package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMissingField is returned by create hooks when a column the store
// requires is empty.
var ErrMissingField = errors.New("required field missing")

func init() {
	// Money columns are exchanged as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base contains common columns for all tables. IDs are assigned by the
// database, increase monotonically and are never reused.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Kind names a stored entity collection.
type Kind string

const (
	KindAccount    Kind = "account"
	KindInvestment Kind = "investment"
	KindExpense    Kind = "expense"
)
