package format

import (
	"time"

	"github.com/AlexanderJohnD/WealthWise/internal/aggregation"
)

// DateLayout is how expense dates are shown.
const DateLayout = "2006-01-02"

// DashboardView holds every dashboard slot as display text.
type DashboardView struct {
	AsOf              time.Time    `json:"as_of"`
	NetWorth          string       `json:"net_worth"`
	MonthlyIncome     string       `json:"monthly_income"`
	MonthlyExpenses   string       `json:"monthly_expenses"`
	SavingsRate       string       `json:"savings_rate"`
	PortfolioValue    string       `json:"portfolio_value"`
	PortfolioGain     string       `json:"portfolio_gain"`
	PortfolioGainTone Tone         `json:"portfolio_gain_tone"`
	Holdings          []HoldingRow `json:"holdings"`
	Goals             []GoalRow    `json:"goals"`
	RecentExpenses    []ExpenseRow `json:"recent_expenses"`
}

// HoldingRow is one line of the investment table.
type HoldingRow struct {
	Symbol        string `json:"symbol"`
	Shares        int64  `json:"shares"`
	PurchasePrice string `json:"purchase_price"`
	CurrentValue  string `json:"current_value"`
	GainLoss      string `json:"gain_loss"`
	Tone          Tone   `json:"tone"`
}

// GoalRow is one savings goal with its progress.
type GoalRow struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Target   string `json:"target"`
	Saved    string `json:"saved"`
	Progress string `json:"progress"`
}

// ExpenseRow is one entry of the recent expense list. Amounts are shown as
// outflows.
type ExpenseRow struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
}

// Dashboard formats s for display.
func Dashboard(s aggregation.Summary) DashboardView {
	view := DashboardView{
		AsOf:              s.AsOf,
		NetWorth:          Currency(s.NetWorth),
		MonthlyIncome:     Currency(s.MonthlyIncome),
		MonthlyExpenses:   Currency(s.MonthlyExpenses),
		SavingsRate:       Percent(s.SavingsRate),
		PortfolioValue:    Currency(s.Portfolio.TotalValue),
		PortfolioGain:     Currency(s.Portfolio.TotalGain),
		PortfolioGainTone: Delta(s.Portfolio.TotalGain),
		Holdings:          make([]HoldingRow, 0, len(s.Holdings)),
		Goals:             make([]GoalRow, 0, len(s.Goals)),
		RecentExpenses:    make([]ExpenseRow, 0, len(s.RecentExpenses)),
	}

	for _, h := range s.Holdings {
		view.Holdings = append(view.Holdings, HoldingRow{
			Symbol:        h.Investment.Symbol,
			Shares:        h.Investment.Shares,
			PurchasePrice: Currency(h.Investment.PurchasePrice),
			CurrentValue:  Currency(h.Value),
			GainLoss:      Currency(h.GainLoss) + " (" + PercentPrecise(h.GainLossPercent) + ")",
			Tone:          Delta(h.GainLoss),
		})
	}

	for _, g := range s.Goals {
		view.Goals = append(view.Goals, GoalRow{
			ID:       g.Goal.ID,
			Title:    g.Goal.Title,
			Target:   Currency(g.Goal.Target),
			Saved:    Currency(g.Goal.Current),
			Progress: Percent(g.Percentage),
		})
	}

	for _, e := range s.RecentExpenses {
		view.RecentExpenses = append(view.RecentExpenses, ExpenseRow{
			Date:        e.Date.UTC().Format(DateLayout),
			Description: e.Description,
			Category:    e.Category,
			Amount:      "-" + Currency(e.Amount),
		})
	}

	return view
}
