// Package aggregation derives the dashboard's financial figures from raw
// records. Every function is pure: inputs are never modified, nothing is read
// from storage, and time windows take an explicit reference instant.
package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

var hundred = decimal.NewFromInt(100)

// PortfolioTotals sums cost basis and estimated value across holdings.
type PortfolioTotals struct {
	TotalCost  decimal.Decimal `json:"total_cost"`
	TotalValue decimal.Decimal `json:"total_value"`
	TotalGain  decimal.Decimal `json:"total_gain"`
}

// GainPercent is TotalGain relative to TotalCost, or zero with no cost.
func (t PortfolioTotals) GainPercent() decimal.Decimal {
	return percentOf(t.TotalGain, t.TotalCost)
}

// Holding is one investment with its derived figures.
type Holding struct {
	Investment      models.Investment `json:"investment"`
	Cost            decimal.Decimal   `json:"cost"`
	Value           decimal.Decimal   `json:"value"`
	GainLoss        decimal.Decimal   `json:"gain_loss"`
	GainLossPercent decimal.Decimal   `json:"gain_loss_percent"`
}

// Cost is the amount paid for the holding: shares × purchase price.
func Cost(inv models.Investment) decimal.Decimal {
	return decimal.NewFromInt(inv.Shares).Mul(inv.PurchasePrice)
}

// CurrentValue estimates what the holding is worth. Without a known current
// price the cost basis is the best estimate.
func CurrentValue(inv models.Investment) decimal.Decimal {
	if inv.CurrentPrice.IsPositive() {
		return decimal.NewFromInt(inv.Shares).Mul(inv.CurrentPrice)
	}
	return Cost(inv)
}

// GainLoss is CurrentValue minus Cost.
func GainLoss(inv models.Investment) decimal.Decimal {
	return CurrentValue(inv).Sub(Cost(inv))
}

// GainLossPercent is GainLoss as a percentage of Cost. A holding with no
// cost reports 0.
func GainLossPercent(inv models.Investment) decimal.Decimal {
	return percentOf(GainLoss(inv), Cost(inv))
}

// Portfolio totals cost, value and gain over investments. An empty slice
// yields all zeros.
func Portfolio(investments []models.Investment) PortfolioTotals {
	var totals PortfolioTotals
	for i := range investments {
		totals.TotalCost = totals.TotalCost.Add(Cost(investments[i]))
		totals.TotalValue = totals.TotalValue.Add(CurrentValue(investments[i]))
	}
	totals.TotalGain = totals.TotalValue.Sub(totals.TotalCost)
	return totals
}

// Holdings derives per-investment figures in input order.
func Holdings(investments []models.Investment) []Holding {
	holdings := make([]Holding, 0, len(investments))
	for _, inv := range investments {
		holdings = append(holdings, Holding{
			Investment:      inv,
			Cost:            Cost(inv),
			Value:           CurrentValue(inv),
			GainLoss:        GainLoss(inv),
			GainLossPercent: GainLossPercent(inv),
		})
	}
	return holdings
}

// percentOf returns part/whole × 100, or zero when whole is not positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
