package format

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"
)

// Markdown renders the dashboard as a markdown document.
func Markdown(v DashboardView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("WealthWise Dashboard on %s", v.AsOf.Format(DateLayout)))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Net Worth"), md.Bold(v.NetWorth)},
		Rows: [][]string{
			{"Monthly Income", v.MonthlyIncome},
			{"Monthly Expenses", v.MonthlyExpenses},
			{"Savings Rate", v.SavingsRate},
			{"Portfolio Value", v.PortfolioValue},
			{"Portfolio Gain", signed(v.PortfolioGain, v.PortfolioGainTone)},
		},
	})

	doc.H2("Investments")
	if len(v.Holdings) == 0 {
		doc.PlainText("No investments yet.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Symbol", "Shares", "Purchase Price", "Current Value", "Gain/Loss"},
		}
		for _, h := range v.Holdings {
			table.Rows = append(table.Rows, []string{
				h.Symbol,
				strconv.FormatInt(h.Shares, 10),
				h.PurchasePrice,
				h.CurrentValue,
				signed(h.GainLoss, h.Tone),
			})
		}
		doc.Table(table)
	}

	doc.H2("Recent Expenses")
	if len(v.RecentExpenses) == 0 {
		doc.PlainText("No expenses recorded.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Description", "Category", "Amount"},
		}
		for _, e := range v.RecentExpenses {
			table.Rows = append(table.Rows, []string{e.Date, e.Description, e.Category, e.Amount})
		}
		doc.Table(table)
	}

	doc.H2("Goals")
	if len(v.Goals) == 0 {
		doc.PlainText("No goals set.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Goal", "Saved", "Target", "Complete"},
		}
		for _, g := range v.Goals {
			table.Rows = append(table.Rows, []string{g.Title, g.Saved, g.Target, g.Progress})
		}
		doc.Table(table)
	}

	return doc.String()
}

// Terminal renders markdown for a terminal with the named glamour style,
// e.g. "dark", "light" or "notty".
func Terminal(markdown, style string) (string, error) {
	return glamour.Render(markdown, style)
}

// signed marks losses in bold so they stand out without color.
func signed(text string, tone Tone) string {
	if tone == ToneNegative {
		return md.Bold(text)
	}
	return text
}
