package format

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/AlexanderJohnD/WealthWise/internal/aggregation"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// Accounts renders an account listing as markdown.
func Accounts(accounts []models.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Name", "Type", "Balance"},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.Name,
			string(a.Type),
			signed(Currency(a.Balance), Delta(a.Balance)),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Investments renders a holding listing as markdown, valued the same way as
// the dashboard.
func Investments(investments []models.Investment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Investments")
	if len(investments) == 0 {
		doc.PlainText("No investments yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Purchased", "Symbol", "Shares", "Purchase Price", "Current Value"},
	}
	for _, inv := range investments {
		table.Rows = append(table.Rows, []string{
			inv.PurchaseDate.UTC().Format(DateLayout),
			inv.Symbol,
			strconv.FormatInt(inv.Shares, 10),
			Currency(inv.PurchasePrice),
			Currency(aggregation.CurrentValue(inv)),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Expenses renders an expense listing as markdown.
func Expenses(expenses []models.Expense) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Expenses")
	if len(expenses) == 0 {
		doc.PlainText("No expenses recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Description", "Category", "Amount"},
	}
	for _, e := range expenses {
		table.Rows = append(table.Rows, []string{
			e.Date.UTC().Format(DateLayout),
			e.Description,
			e.Category,
			"-" + Currency(e.Amount),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Goals renders the goal list with progress as markdown.
func Goals(goals []models.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Goals")
	if len(goals) == 0 {
		doc.PlainText("No goals set.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Goal", "Saved", "Target", "Complete"},
	}
	for _, g := range goals {
		table.Rows = append(table.Rows, []string{
			g.Title,
			Currency(g.Current),
			Currency(g.Target),
			Percent(aggregation.Progress(g).Percentage),
		})
	}
	doc.Table(table)
	return doc.String()
}
