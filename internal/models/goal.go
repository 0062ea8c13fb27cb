package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. Goals live outside the relational store, in the
// goal repository, and carry a client-generated time-ordered ID.
type Goal struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Target  decimal.Decimal `json:"target"`
	Current decimal.Decimal `json:"current"`
	Created time.Time       `json:"created"`
}
